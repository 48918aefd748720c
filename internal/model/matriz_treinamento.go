package model

// ── Tipo de obrigatoriedade da matriz ──

const (
	ObrigatoriedadeOB = "OB"  // obrigatório
	ObrigatoriedadeAP = "AP"  // aplicável
	ObrigatoriedadeRC = "RC"  // recomendado
	ObrigatoriedadeAD = "AD"  // adicional
	ObrigatoriedadeNA = "N-A" // não aplicável
)

// MatrizTreinamento entrada da matriz (contrato × função × treinamento) — tabela matriz_treinamento
type MatrizTreinamento struct {
	ID                  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"              json:"id"`
	ContratoID          string `gorm:"type:uuid;not null;uniqueIndex:idx_matriz_chave,priority:1" json:"contrato_id"`
	FuncaoID            string `gorm:"type:uuid;not null;uniqueIndex:idx_matriz_chave,priority:2" json:"funcao_id"`
	TreinamentoID       string `gorm:"type:uuid;not null;uniqueIndex:idx_matriz_chave,priority:3" json:"treinamento_id"`
	TipoObrigatoriedade string `gorm:"type:varchar(5);not null;default:'OB'"                      json:"tipo_obrigatoriedade"`
	Setor               string `gorm:"type:varchar(20);not null;default:'TREINAMENTO'"            json:"setor"`
	Ativo               bool   `gorm:"not null;default:true"                                      json:"ativo"`
	BaseModel

	// Relações
	Contrato    *Contrato    `gorm:"foreignKey:ContratoID"    json:"contrato,omitempty"`
	Funcao      *Funcao      `gorm:"foreignKey:FuncaoID"      json:"funcao,omitempty"`
	Treinamento *Treinamento `gorm:"foreignKey:TreinamentoID" json:"treinamento,omitempty"`
}

// TableName nome da tabela
func (MatrizTreinamento) TableName() string { return "matriz_treinamento" }

// ExigeTarefa indica se a entrada representa um requisito ativo que gera tarefa.
// N-A nunca gera tarefa.
func (m *MatrizTreinamento) ExigeTarefa() bool {
	if !m.Ativo {
		return false
	}
	switch m.TipoObrigatoriedade {
	case ObrigatoriedadeOB, ObrigatoriedadeAP, ObrigatoriedadeRC, ObrigatoriedadeAD:
		return true
	default:
		return false
	}
}
