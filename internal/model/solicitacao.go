package model

import "time"

// ── Status da solicitação (derivado dos remanejamentos filhos) ──

const (
	SolicitacaoPendente    = "Pendente"
	SolicitacaoEmAnalise   = "Em Análise"
	SolicitacaoEmAndamento = "Em Andamento"
	SolicitacaoAprovada    = "Aprovado"
	SolicitacaoRejeitada   = "Rejeitado"
	SolicitacaoConcluida   = "Concluído"
)

// ── Prioridade ──

const (
	PrioridadeBaixa   = "BAIXA"
	PrioridadeMedia   = "MEDIA"
	PrioridadeAlta    = "ALTA"
	PrioridadeUrgente = "URGENTE"
)

// SolicitacaoRemanejamento solicitação de remanejamento — tabela solicitacoes_remanejamento
//
// O campo Status nunca é gravado diretamente pelos chamadores: ele é derivado do
// conjunto de remanejamentos filhos pela regra de verificação de conclusão.
type SolicitacaoRemanejamento struct {
	ID                   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ContratoOrigemID     *string    `gorm:"type:uuid"                                      json:"contrato_origem_id,omitempty"`
	CentroCustoOrigemID  *string    `gorm:"type:uuid"                                      json:"centro_custo_origem_id,omitempty"`
	ContratoDestinoID    *string    `gorm:"type:uuid"                                      json:"contrato_destino_id,omitempty"`
	CentroCustoDestinoID *string    `gorm:"type:uuid"                                      json:"centro_custo_destino_id,omitempty"`
	Justificativa        string     `gorm:"type:text"                                      json:"justificativa,omitempty"`
	Status               string     `gorm:"type:varchar(30);not null;default:'Pendente'"   json:"status"`
	Prioridade           string     `gorm:"type:varchar(10);not null;default:'MEDIA'"      json:"prioridade"`
	SolicitanteNome      string     `gorm:"type:varchar(150)"                              json:"solicitante_nome,omitempty"`
	SolicitanteID        *string    `gorm:"type:uuid"                                      json:"solicitante_id,omitempty"`
	DataSolicitacao      time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"data_solicitacao"`
	DataAnalise          *time.Time `json:"data_analise,omitempty"`
	DataAprovacao        *time.Time `json:"data_aprovacao,omitempty"`
	DataConclusao        *time.Time `json:"data_conclusao,omitempty"`
	BaseModel

	// Relações
	ContratoOrigem  *Contrato                  `gorm:"foreignKey:ContratoOrigemID"  json:"contrato_origem,omitempty"`
	ContratoDestino *Contrato                  `gorm:"foreignKey:ContratoDestinoID" json:"contrato_destino,omitempty"`
	Remanejamentos  []RemanejamentoFuncionario `gorm:"foreignKey:SolicitacaoID"     json:"remanejamentos,omitempty"`
}

// TableName nome da tabela
func (SolicitacaoRemanejamento) TableName() string { return "solicitacoes_remanejamento" }
