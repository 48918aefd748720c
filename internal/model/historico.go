package model

import "time"

// ── Tipos de ação do histórico ──

const (
	AcaoCriacao           = "CRIACAO"
	AcaoCancelamento      = "CANCELAMENTO"
	AcaoReativacao        = "REATIVACAO"
	AcaoAtualizacaoStatus = "ATUALIZACAO_STATUS"
	AcaoReverter          = "REVERTER"
	AcaoExclusao          = "EXCLUSAO"
	AcaoObservacao        = "OBSERVACAO"
)

// ── Entidades auditadas ──

const (
	EntidadeSolicitacao   = "SOLICITACAO"
	EntidadeRemanejamento = "REMANEJAMENTO"
	EntidadeTarefa        = "TAREFA"
)

// ── Identidades automáticas do sistema ──

const (
	IdentidadeSistema             = "Sistema"
	IdentidadeSincronizacaoManual = "Sistema - Sincronização Manual"
)

// HistoricoRemanejamento entrada do livro-razão de auditoria — tabela historicos_remanejamento
//
// Apenas inserção; nenhum caminho de código atualiza ou remove linhas, exceto o purge
// administrativo do subsistema inteiro. As referências a solicitação/remanejamento/tarefa
// são ids-como-valores (sem FK imposta): a exclusão do agregado vivo nunca quebra a
// linha de auditoria. O ID BIGSERIAL dá a ordem total usada como desempate de data_acao.
type HistoricoRemanejamento struct {
	ID                         uint64    `gorm:"primaryKey;autoIncrement"           json:"id"`
	SolicitacaoID              *string   `gorm:"type:uuid;index"                    json:"solicitacao_id,omitempty"`
	RemanejamentoFuncionarioID *string   `gorm:"type:uuid;index"                    json:"remanejamento_funcionario_id,omitempty"`
	TarefaID                   *string   `gorm:"type:uuid;index:idx_historico_tarefa_data,priority:1" json:"tarefa_id,omitempty"`
	TipoAcao                   string    `gorm:"type:varchar(30);not null;index"    json:"tipo_acao"`
	Entidade                   string    `gorm:"type:varchar(20);not null;index"    json:"entidade"`
	CampoAlterado              *string   `gorm:"type:varchar(50)"                   json:"campo_alterado,omitempty"`
	ValorAnterior              *string   `gorm:"type:text"                          json:"valor_anterior,omitempty"`
	ValorNovo                  *string   `gorm:"type:text"                          json:"valor_novo,omitempty"`
	DescricaoAcao              string    `gorm:"type:text"                          json:"descricao_acao,omitempty"`
	UsuarioNome                string    `gorm:"type:varchar(150)"                  json:"usuario_nome,omitempty"`
	UsuarioID                  *string   `gorm:"type:uuid"                          json:"usuario_id,omitempty"`
	EquipeID                   *string   `gorm:"type:uuid"                          json:"equipe_id,omitempty"`
	DataAcao                   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_historico_tarefa_data,priority:2" json:"data_acao"`
}

// TableName nome da tabela
func (HistoricoRemanejamento) TableName() string { return "historicos_remanejamento" }
