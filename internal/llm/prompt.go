package llm

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/desc-flow/internal/models"
)

// maxTranscriptRunes keeps prompts well inside the models' context windows.
const maxTranscriptRunes = 60000

const translatePrompt = `You are a professional subtitle translator. Translate the video transcript below into the language whose ISO 639-1 code is %q.

Rules:
- Keep the meaning, tone and line breaks of the original
- Keep product names, code and technical terms untranslated
- Reply with the translated text only, without any preamble or notes

Transcript:
---
%s
---`

const descriptionPrompt = `You write YouTube video descriptions.

Video type: %s
Tone: %s
Write in language: %s
%s
Reply with a single JSON object and nothing else, using exactly these keys:
{
  "title": "one catchy opening line",
  "resume": "two or three short paragraphs summarising what the viewer will learn or see",
  "call_to_action": "one or two sentences inviting the viewer to like, comment or subscribe",
  "about_channel": "one sentence presenting the channel"
}

Do not include timestamps, links or hashtags in your text: they are appended automatically.`

func buildTranslatePrompt(text, lang string) string {
	return fmt.Sprintf(translatePrompt, lang, truncate(text, maxTranscriptRunes))
}

func buildDescriptionPrompt(sc models.SynthesisContext) string {
	var details strings.Builder

	if sc.VideoURL != "" {
		fmt.Fprintf(&details, "Video URL: %s\n", sc.VideoURL)
	}
	if sc.VideoTitle != "" {
		fmt.Fprintf(&details, "Current video title: %s\n", sc.VideoTitle)
	}
	if sc.ChannelTitle != "" {
		fmt.Fprintf(&details, "Channel: %s\n", sc.ChannelTitle)
	}
	if sc.KeywordPhrase != "" {
		fmt.Fprintf(&details, "Work these keywords naturally into the text: %s\n", sc.KeywordPhrase)
	}
	if len(sc.Chapters) > 0 {
		labels := make([]string, 0, len(sc.Chapters))
		for _, c := range sc.Chapters {
			labels = append(labels, c.Label)
		}
		fmt.Fprintf(&details, "The video is split into these chapters: %s\n", strings.Join(labels, "; "))
	}
	if len(sc.Links) > 0 {
		labels := make([]string, 0, len(sc.Links))
		for _, l := range sc.Links {
			labels = append(labels, l.Label)
		}
		fmt.Fprintf(&details, "Resources linked below the description: %s\n", strings.Join(labels, ", "))
	}

	if sc.Transcript != "" {
		fmt.Fprintf(&details, "\nTranscript:\n---\n%s\n---\n", truncate(sc.Transcript, maxTranscriptRunes))
	} else {
		details.WriteString("\nNo transcript is available: rely on the video type, title and keywords.\n")
	}

	return fmt.Sprintf(descriptionPrompt,
		videoTypeDirective(sc.VideoType),
		toneDirective(sc.Tone),
		languageOrDefault(sc.Language),
		details.String(),
	)
}

// toneDirective passes the tone through as-is. The web form's "based on video"
// option gets an explicit instruction since the raw value means nothing to a model.
func toneDirective(tone string) string {
	tone = strings.TrimSpace(tone)
	switch {
	case tone == "":
		return "neutral and informative"
	case strings.Contains(strings.ToLower(tone), "based_on_video"):
		return "match the tone of the speaker in the transcript"
	default:
		return tone
	}
}

func videoTypeDirective(videoType string) string {
	videoType = strings.TrimSpace(videoType)
	switch {
	case videoType == "":
		return "unspecified"
	case strings.Contains(strings.ToLower(videoType), "based_on_content"):
		return "infer it from the transcript"
	default:
		return videoType
	}
}

func languageOrDefault(lang string) string {
	if lang = strings.TrimSpace(lang); lang != "" {
		return lang
	}
	return "the language of the transcript"
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
