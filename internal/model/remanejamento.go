package model

// ── Status de submissão ao sistema externo (Prestserv) ──

const (
	PrestservPendente  = "PENDENTE"
	PrestservCriado    = "CRIADO"
	PrestservSubmetido = "SUBMETIDO"
	PrestservAprovado  = "APROVADO"
	PrestservValidado  = "VALIDADO"
	PrestservRejeitado = "REJEITADO"
	PrestservCancelado = "CANCELADO"
)

// ── Status de andamento das tarefas do remanejamento ──

const (
	StatusTarefasSubmeterRascunho = "SUBMETER RASCUNHO"
	StatusTarefasPendentes        = "TAREFAS PENDENTES"
	StatusTarefasConcluidas       = "TAREFAS CONCLUIDAS"
)

// PrestservTerminal indica se o status encerra a participação do funcionário
func PrestservTerminal(status string) bool {
	switch status {
	case PrestservAprovado, PrestservValidado, PrestservRejeitado, PrestservCancelado:
		return true
	default:
		return false
	}
}

// RemanejamentoFuncionario participação de um funcionário em uma solicitação — tabela remanejamentos_funcionario
type RemanejamentoFuncionario struct {
	ID                string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SolicitacaoID     string `gorm:"type:uuid;not null;index"                       json:"solicitacao_id"`
	FuncionarioID     uint   `gorm:"not null;index"                                 json:"funcionario_id"`
	StatusTarefas     string `gorm:"type:varchar(30);not null;default:'SUBMETER RASCUNHO'" json:"status_tarefas"`
	StatusPrestserv   string `gorm:"type:varchar(20);not null;default:'PENDENTE'"   json:"status_prestserv"`
	StatusFuncionario string `gorm:"type:varchar(30)"                               json:"status_funcionario,omitempty"`
	Observacoes       string `gorm:"type:text"                                      json:"observacoes,omitempty"`
	BaseModel

	// Relações
	Solicitacao *SolicitacaoRemanejamento `gorm:"foreignKey:SolicitacaoID" json:"solicitacao,omitempty"`
	Funcionario *Funcionario              `gorm:"foreignKey:FuncionarioID" json:"funcionario,omitempty"`
	Tarefas     []TarefaRemanejamento     `gorm:"foreignKey:RemanejamentoFuncionarioID" json:"tarefas,omitempty"`
}

// TableName nome da tabela
func (RemanejamentoFuncionario) TableName() string { return "remanejamentos_funcionario" }
