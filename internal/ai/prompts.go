package ai

import "strings"

// maxPromptTextRunes caps how much listing text goes into one prompt.
const maxPromptTextRunes = 6000

const extractionPromptTemplate = `
És um perito em avaliação de tecnologia usada em Portugal (hardware PC, portáteis, smartphones).
Analisa o texto e cria uma tabela de avaliação com foco em DESGASTE.

TEXTO: "{{TEXT}}"

### REGRAS PARA SMARTPHONES
1. Procura EXPLICITAMENTE por "Saúde da Bateria", "Capacidade Máxima", "Battery Health" ou "%".
2. Se encontrares a percentagem (ex: 87):
   - Acima de 90: valoriza o equipamento.
   - Entre 80 e 89: desvaloriza ligeiramente (uso normal).
   - Abaixo de 80: desvaloriza MUITO (aplica o custo de uma bateria nova, ~80 EUR, no preço usado).
3. Se não encontrares a percentagem, assume "Desconhecido" mas avisa que é arriscado.

### REGRAS PARA RAM
1. Procura ativamente por configurações de pentes: "2x8GB", "4x4GB", "1x16GB", "Dual Channel", "Quad Channel".
2. Se encontrares apenas "16GB" sem detalhes, assume o cenário mais comum (2x8GB em desktops gamer, 1x16GB em laptops baratos) e adiciona "(Verificar Fotos)" no nome.
3. Se o texto mencionar a quantidade de pentes, usa isso.

### TAREFAS
1. Classifica o tipo: "Desktop", "Laptop" ou "Smartphone".
2. Identifica componentes (CPU, GPU, RAM, Ecrã, Bateria, etc.).
3. Estima preços (novo vs usado) em euros.

### RESPOSTA JSON OBRIGATÓRIA
{
  "category": "Desktop/Laptop/Smartphone",
  "cpu": "...", "gpu": "...", "ram": "Ex: 16GB (2x8GB) DDR4", "storage": "...",
  "condition": "Usado",
  "battery_health": 87 (ou null se não aplicável ou desconhecido),
  "battery_verdict": "Bom/Aceitável/Mau - Precisa Trocar",
  "year_estimation": 20XX,
  "listing_price_found": 0.0 (ou null),
  "components": [
    { "name": "Peça", "model": "Detalhe", "price_new": 0.0, "price_used": 0.0 }
  ]
}
`

// BuildExtractionPrompt clips the listing text and fills the template.
func BuildExtractionPrompt(text string) string {
	r := []rune(text)
	if len(r) > maxPromptTextRunes {
		r = r[:maxPromptTextRunes]
	}
	return strings.ReplaceAll(extractionPromptTemplate, "{{TEXT}}", string(r))
}
