package transcript

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

func TestNormalizeEmpty(t *testing.T) {
	for _, format := range []models.TranscriptFormat{models.FormatPlain, models.FormatChunked} {
		segments, warnings := Normalize("   \n ", format)
		assert.Empty(t, segments)
		assert.Empty(t, warnings)
	}
}

func TestNormalizePlain(t *testing.T) {
	segments, warnings := Normalize("  00:00 hello there\nsecond line ", models.FormatPlain)
	require.Len(t, segments, 1)
	assert.Nil(t, segments[0].Start)
	assert.Equal(t, "00:00 hello there\nsecond line", segments[0].Text)
	assert.Empty(t, warnings)
}

func TestNormalizeChunks(t *testing.T) {
	segments, warnings := Normalize("00:00 Intro|| 01:30 Setup|| [1:02:03] - Deep dive", models.FormatChunked)
	require.Len(t, segments, 3)
	assert.Empty(t, warnings)

	want := []struct {
		offset time.Duration
		text   string
	}{
		{0, "Intro"},
		{90 * time.Second, "Setup"},
		{time.Hour + 2*time.Minute + 3*time.Second, "Deep dive"},
	}
	for i, w := range want {
		require.NotNil(t, segments[i].Start)
		assert.Equal(t, w.offset, *segments[i].Start)
		assert.Equal(t, w.text, segments[i].Text)
	}
}

func TestNormalizeChunksByLine(t *testing.T) {
	segments, _ := Normalize("0 Welcome\n12.5s Agenda\nno marker here", models.FormatChunked)
	require.Len(t, segments, 3)
	assert.Equal(t, time.Duration(0), *segments[0].Start)
	assert.Equal(t, 12500*time.Millisecond, *segments[1].Start)
	assert.Nil(t, segments[2].Start)
	assert.Equal(t, "no marker here", segments[2].Text)
}

func TestNormalizeMalformedChunks(t *testing.T) {
	raw := "00:00 Intro|| ||01:75 Bad marker||02:00||02:30 Middle||00:30 Backwards||03:00 Outro"
	segments, warnings := Normalize(raw, models.FormatChunked)

	require.Len(t, segments, 5)
	assert.Equal(t, "Intro", segments[0].Text)

	assert.Equal(t, "Bad marker", segments[1].Text)
	assert.Nil(t, segments[1].Start)

	assert.Equal(t, "Middle", segments[2].Text)
	assert.Equal(t, 150*time.Second, *segments[2].Start)

	assert.Equal(t, "Backwards", segments[3].Text)
	assert.Nil(t, segments[3].Start)

	assert.Equal(t, "Outro", segments[4].Text)
	assert.Equal(t, 3*time.Minute, *segments[4].Start)

	// empty chunk, bad marker, marker without text, backwards offset
	assert.Len(t, warnings, 4)
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"00:00", 0, true},
		{"01:30", 90 * time.Second, true},
		{"(10:05)", 10*time.Minute + 5*time.Second, true},
		{"1:00:00", time.Hour, true},
		{"75", 75 * time.Second, true},
		{"75s", 75 * time.Second, true},
		{"01:60", 0, false},
		{"24:00:00", MaxOffset, true},
		{"24:00:01", 0, false},
		{"86401", 0, false},
		{"99999999999", 0, false},
		{"99999999999.5s", 0, false},
		{"9999999999999:00", 0, false},
		{"99999999999999999999:00", 0, false},
		{"intro", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOffset(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizeRejectsOversizedOffsets(t *testing.T) {
	segments, warnings := Normalize("99999999999 Intro|| 9999999999999:00 Middle|| 100 Next", models.FormatChunked)

	require.Len(t, segments, 3)
	assert.False(t, segments[0].HasOffset())
	assert.False(t, segments[1].HasOffset())
	require.True(t, segments[2].HasOffset())
	assert.Equal(t, 100*time.Second, *segments[2].Start)
	assert.Len(t, warnings, 2)
}

func TestTextHelpers(t *testing.T) {
	start := 90 * time.Second
	segments := []models.TranscriptSegment{{Text: "first"}, {Start: &start, Text: "second"}}
	assert.Equal(t, "first\nsecond", Text(segments))
	assert.Equal(t, "first\n[01:30] second", TimedText(segments))
}
