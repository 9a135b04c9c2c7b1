package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// persona describes the writer the model speaks as.
const persona = `Sen Rıdvan Haliloğlu adında, Gümrük Müşaviri, Eğitmen ve Mundoimex Yönetim Kurulu Başkanı olan profesyonel birisin.
Uzmanlık alanların: Dış ticaret, gümrük mevzuatı, lojistik, dijital dönüşüm ve eğitim.
Dilin profesyonel, vizyoner, eğitici ama samimi olmalı. Sektör terimlerini yerinde kullanmalısın.
Yazılarında "Ben" diliyle kişisel tecrübelerine atıfta bulunabilirsin.`

var contentRules = []string{
	"Başlık ilgi çekici ve profesyonel olsun.",
	"Özet 2-3 cümlelik vurucu bir giriş olsun.",
	"İçerik en az 3 paragraf olsun ve sektörel bir derinlik içersin.",
	"3-5 adet ilgili etiket üret.",
}

// BuildPrompt returns the persona instruction and the task instruction for topic.
// The topic is embedded verbatim.
func BuildPrompt(topic string) Prompt {
	var sb strings.Builder
	sb.WriteString("Lütfen aşağıdaki konu hakkında Türkçe bir blog yazısı oluştur.\n")
	sb.WriteString(fmt.Sprintf("Konu: %s\n\n", topic))
	sb.WriteString("İçerik kuralları:\n")
	for i, rule := range contentRules {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rule))
	}

	return Prompt{
		System: persona,
		User:   sb.String(),
	}
}
