package dto

import "time"

// HistoricoListRequest consulta paginada ao livro-razão
type HistoricoListRequest struct {
	SolicitacaoID              string     `form:"solicitacao_id"`
	RemanejamentoFuncionarioID string     `form:"remanejamento_funcionario_id"`
	TarefaID                   string     `form:"tarefa_id"`
	Entidade                   string     `form:"entidade"`
	TipoAcao                   string     `form:"tipo_acao"`
	Desde                      *time.Time `form:"desde" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit                      int        `form:"limit,default=50"`
	Offset                     int        `form:"offset,default=0"`
}

// BackfillEventosRequest escopo do backfill de eventos de status
type BackfillEventosRequest struct {
	TarefaIDs []string `json:"tarefa_ids"`
}

// ResultadoBackfill resumo do backfill
type ResultadoBackfill struct {
	EventosCriados int `json:"eventos_criados"`
}

// ResultadoCorrecao resumo da correção de datas de conclusão
type ResultadoCorrecao struct {
	EventosCorrigidos int `json:"eventos_corrigidos"`
}
