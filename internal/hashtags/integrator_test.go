package hashtags

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrateSeed(t *testing.T) {
	res := Integrate("", "#SEO #LangChain, seo   #lang-chain #Été", "casual", 0)
	assert.Equal(t, []string{"#seo", "#langchain", "#été"}, res.Hashtags)
	assert.Empty(t, res.KeywordPhrase)
}

func TestIntegrateSEOTonePromotesKeywords(t *testing.T) {
	res := Integrate("SEO, IA, Lang Chain", "#SEO", "seo", 0)
	assert.Equal(t, []string{"#seo", "#ia", "#langchain"}, res.Hashtags)
	assert.Equal(t, "SEO, IA, Lang Chain", res.KeywordPhrase)
	assert.Equal(t, []string{"SEO", "IA", "Lang Chain"}, res.Keywords)
}

func TestIntegrateOtherToneKeepsKeywordsOutOfTags(t *testing.T) {
	res := Integrate("golang tutorial golang", "", "friendly", 0)
	assert.Empty(t, res.Hashtags)
	assert.Equal(t, "golang, tutorial", res.KeywordPhrase)
}

func TestIntegrateMalformed(t *testing.T) {
	for _, seed := range []string{"", "   ", "# ## ,,, !!!"} {
		res := Integrate("", seed, "SEO-optimized", 0)
		assert.Empty(t, res.Hashtags, "seed %q", seed)
	}
}

func TestIntegrateCap(t *testing.T) {
	res := Integrate("", "#a #b #c #d #e", "", 3)
	assert.Equal(t, []string{"#a", "#b", "#c"}, res.Hashtags)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "#d #e")
}

func TestIntegrateSeedOverDefaultMaxWarns(t *testing.T) {
	var seed []string
	for i := 1; i <= DefaultMax+2; i++ {
		seed = append(seed, fmt.Sprintf("#tag%d", i))
	}

	res := Integrate("", strings.Join(seed, " "), "", 0)
	assert.Len(t, res.Hashtags, DefaultMax)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "#tag16 #tag17")

	within := Integrate("", "#a #a #b", "", 0)
	assert.Empty(t, within.Warnings)
}
