package model

import "time"

// TarefaStatusEvento evento imutável da linha do tempo de status de uma tarefa —
// tabela tarefas_status_eventos
//
// Regra de deduplicação: no máximo um evento por (tarefa_id, status_novo, data_evento),
// com data_evento comparada como instante exato.
type TarefaStatusEvento struct {
	ID             string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TarefaID       string    `gorm:"type:uuid;not null;index:idx_evento_dedup,priority:1" json:"tarefa_id"`
	StatusAnterior *string   `gorm:"type:varchar(20)"                               json:"status_anterior,omitempty"`
	StatusNovo     string    `gorm:"type:varchar(20);not null;index:idx_evento_dedup,priority:2" json:"status_novo"`
	DataEvento     time.Time `gorm:"not null;index:idx_evento_dedup,priority:3"     json:"data_evento"`
	UsuarioNome    string    `gorm:"type:varchar(150)"                              json:"usuario_nome,omitempty"`
	EquipeID       *string   `gorm:"type:uuid"                                      json:"equipe_id,omitempty"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName nome da tabela
func (TarefaStatusEvento) TableName() string { return "tarefas_status_eventos" }

// StatusConcluido indica um status de conclusão (variantes de gênero incluídas)
func StatusConcluido(status string) bool {
	return status == "CONCLUIDO" || status == "CONCLUIDA"
}
