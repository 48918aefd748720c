package model

import (
	"fmt"
	"time"
)

// ── Status da tarefa ──

const (
	TarefaPendente    = "PENDENTE"
	TarefaEmAndamento = "EM_ANDAMENTO"
	TarefaConcluida   = "CONCLUIDO"
	TarefaCancelada   = "CANCELADO"
)

// TarefaRemanejamento unidade de trabalho gerada para um remanejamento — tabela tarefas_remanejamento
//
// A tupla (remanejamento_funcionario_id, tipo, responsavel) é única: é a chave de
// idempotência da sincronização com a matriz de treinamento.
type TarefaRemanejamento struct {
	ID                         string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"                 json:"id"`
	RemanejamentoFuncionarioID string     `gorm:"type:uuid;not null;uniqueIndex:idx_tarefa_chave,priority:1"     json:"remanejamento_funcionario_id"`
	Tipo                       string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_tarefa_chave,priority:2" json:"tipo"`
	Responsavel                string     `gorm:"type:varchar(120);not null;uniqueIndex:idx_tarefa_chave,priority:3" json:"responsavel"`
	Descricao                  string     `gorm:"type:text"                                                      json:"descricao,omitempty"`
	Status                     string     `gorm:"type:varchar(20);not null;default:'PENDENTE'"                   json:"status"`
	Prioridade                 string     `gorm:"type:varchar(10);not null;default:'MEDIA'"                      json:"prioridade"`
	DataCriacao                time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP"                             json:"data_criacao"`
	DataLimite                 *time.Time `json:"data_limite,omitempty"`
	DataConclusao              *time.Time `json:"data_conclusao,omitempty"`
	BaseModel

	// Relações
	Remanejamento *RemanejamentoFuncionario `gorm:"foreignKey:RemanejamentoFuncionarioID" json:"remanejamento,omitempty"`
	Observacoes   []TarefaObservacao        `gorm:"foreignKey:TarefaID"                   json:"observacoes,omitempty"`
	Eventos       []TarefaStatusEvento      `gorm:"foreignKey:TarefaID"                   json:"eventos,omitempty"`
}

// TableName nome da tabela
func (TarefaRemanejamento) TableName() string { return "tarefas_remanejamento" }

// Ativa tarefa não cancelada
func (t *TarefaRemanejamento) Ativa() bool { return t.Status != TarefaCancelada }

// ChaveTarefa chave lógica de idempotência de uma tarefa dentro do escopo de sincronização
func ChaveTarefa(remanejamentoID, tipo string, setor Setor) string {
	return fmt.Sprintf("%s|%s|%s", remanejamentoID, NormalizarTexto(tipo), setor)
}

// Chave chave lógica da própria tarefa (responsavel classificado em setor)
func (t *TarefaRemanejamento) Chave() string {
	return ChaveTarefa(t.RemanejamentoFuncionarioID, t.Tipo, ClassificarSetor(t.Responsavel))
}

// TarefaObservacao observação anexada a uma tarefa — tabela tarefas_observacoes
type TarefaObservacao struct {
	ID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TarefaID string    `gorm:"type:uuid;not null;index"                       json:"tarefa_id"`
	Texto    string    `gorm:"type:text;not null"                             json:"texto"`
	Autor    string    `gorm:"type:varchar(150)"                              json:"autor,omitempty"`
	Data     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"data"`
}

// TableName nome da tabela
func (TarefaObservacao) TableName() string { return "tarefas_observacoes" }
