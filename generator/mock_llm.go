package generator

import (
	"context"
	"encoding/json"
	"strings"
)

// MockLLM is a local stand-in that never calls an external model.
// It answers with a schema-conforming payload built from the prompt.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt, _ ResponseFormat) (string, error) {
	topic := topicFromTask(prompt.User)
	var sb strings.Builder
	sb.WriteString(topic)
	sb.WriteString(" konusu, dış ticaretin gündeminde giderek daha fazla yer tutuyor.\n\n")
	sb.WriteString("Sahadaki tecrübelerim, bu başlığın mevzuat ve operasyon açısından birlikte ele alınması gerektiğini gösteriyor.\n\n")
	sb.WriteString("Önümüzdeki dönemde dijital araçlar ve eğitim yatırımları belirleyici olacak.")

	data, err := json.Marshal(ContentResult{
		Title:   topic + ": Sahadan Notlar",
		Summary: "Bu yazı, " + topic + " konusunu gümrük ve lojistik perspektifinden ele alıyor.",
		Content: sb.String(),
		Tags:    []string{"Gümrük", "Lojistik", "Dış Ticaret"},
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func topicFromTask(task string) string {
	for _, line := range strings.Split(task, "\n") {
		if rest, ok := strings.CutPrefix(line, "Konu: "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return "Gümrük"
}
