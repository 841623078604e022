// Package speech wraps the narration collaborators: text-to-speech for
// the article voiceover and speech-to-text for the SRT transcript the
// segmenter consumes.
package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Client wraps the OpenAI audio endpoints. Constructed once and passed
// into the worker.
type Client struct {
	llm   openai.Client
	voice string
}

// NewClient builds a Client from an API key and TTS voice name.
func NewClient(apiKey, voice string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key is empty")
	}
	if voice == "" {
		voice = "alloy"
	}
	return &Client{
		llm:   openai.NewClient(option.WithAPIKey(apiKey)),
		voice: voice,
	}, nil
}

// Synthesize converts article text to MP3 narration audio.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	res, err := c.llm.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModelTTS1,
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(c.voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI speech error: %w", err)
	}
	defer res.Body.Close()

	audio, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("OpenAI returned empty audio")
	}
	return audio, nil
}

// Transcribe converts narration audio into SRT subtitle text. The
// result is raw provider output; callers normalize it through the srt
// package.
func (c *Client) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	params := openai.AudioTranscriptionNewParams{
		Model:          openai.AudioModelWhisper1,
		File:           openai.File(f, filepath.Base(audioPath), "audio/mpeg"),
		ResponseFormat: openai.AudioResponseFormatSRT,
	}
	if language != "" {
		params.Language = openai.String(language)
	}

	transcription, err := c.llm.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("OpenAI transcription error: %w", err)
	}
	if transcription.Text == "" {
		return "", fmt.Errorf("OpenAI returned empty transcript")
	}

	return transcription.Text, nil
}
