package pilot

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tatianab/inner-demons/internal/command"
	"github.com/tatianab/inner-demons/internal/models"
)

//go:embed prompts/choose_action.txt
var chooseActionPrompt string

var chooseActionTmpl = template.Must(template.New("choose_action").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(chooseActionPrompt))

// Gemini asks a Gemini model which command to play next.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel("gemini-2.5-flash")
	return &Gemini{
		client: client,
		model:  model,
	}, nil
}

func (g *Gemini) Close() {
	g.client.Close()
}

func (g *Gemini) NextCommand(ctx context.Context, st *models.GameState) (command.Command, error) {
	prompt, err := renderPrompt(st)
	if err != nil {
		return command.Command{}, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return command.Command{}, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return command.Command{}, fmt.Errorf("no content returned from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return command.Command{}, fmt.Errorf("unexpected response type from Gemini")
	}
	return parseReply(string(text))
}

func renderPrompt(st *models.GameState) (string, error) {
	snap := st.Snapshot()
	data := struct {
		Resolve     uint
		Demons      []models.Demon
		Hand        []models.Card
		InPlay      []models.Card
		DeckSize    int
		DiscardSize int
		Help        string
	}{
		Resolve:     snap.Resolve,
		Demons:      snap.Demons,
		Hand:        snap.Hand,
		InPlay:      snap.InPlay,
		DeckSize:    len(snap.Deck),
		DiscardSize: len(snap.DiscardPile),
		Help:        command.Help,
	}

	var buf bytes.Buffer
	if err := chooseActionTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseReply extracts the first command line from a model reply, which
// may be wrapped in a code fence.
func parseReply(reply string) (command.Command, error) {
	clean := strings.TrimSpace(reply)
	clean = strings.TrimPrefix(clean, "```text")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	for line := range strings.Lines(clean) {
		line = strings.Trim(strings.TrimSpace(line), "`")
		if line == "" {
			continue
		}
		cmd, err := command.Parse(line)
		if err != nil {
			return command.Command{}, fmt.Errorf("model replied %q: %w", line, err)
		}
		return cmd, nil
	}
	return command.Command{}, fmt.Errorf("model reply had no command")
}
