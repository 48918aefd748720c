package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Setor setor responsável por tarefas de remanejamento
type Setor string

const (
	SetorTreinamento Setor = "TREINAMENTO"
	SetorRH          Setor = "RH"
	SetorMedicina    Setor = "MEDICINA"
	SetorOutro       Setor = "OUTRO"
)

// SetoresPadrao setores considerados pela sincronização quando nenhum é informado
var SetoresPadrao = []Setor{SetorTreinamento, SetorRH, SetorMedicina}

// NormalizarTexto remove acentos, espaços nas bordas e converte para caixa alta.
// Base única de comparação para campos de texto livre como "responsavel".
func NormalizarTexto(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(strings.TrimSpace(out))
}

// ClassificarSetor mapeia o texto livre do campo responsavel para um setor.
// TREINAMENTO é testado antes de RH: nomes como "RH - TREINAMENTO OPERACIONAL"
// pertencem ao setor de treinamento.
func ClassificarSetor(responsavel string) Setor {
	n := NormalizarTexto(responsavel)
	switch {
	case strings.Contains(n, "TREINAMENTO"):
		return SetorTreinamento
	case strings.Contains(n, "MEDICINA") || strings.Contains(n, "SAUDE"):
		return SetorMedicina
	case strings.Contains(n, "RECURSOS HUMANOS") || strings.Contains(n, "RH"):
		return SetorRH
	default:
		return SetorOutro
	}
}

// ParseSetor converte um identificador textual em Setor
func ParseSetor(s string) (Setor, bool) {
	switch Setor(NormalizarTexto(s)) {
	case SetorTreinamento:
		return SetorTreinamento, true
	case SetorRH:
		return SetorRH, true
	case SetorMedicina:
		return SetorMedicina, true
	default:
		return SetorOutro, false
	}
}
