package dto

// ResultadoPurge contagem de remoções por tabela do purge administrativo
type ResultadoPurge struct {
	ObservacoesRemovidas     int64 `json:"observacoes_removidas"`
	EventosRemovidos         int64 `json:"eventos_removidos"`
	HistoricosRemovidos      int64 `json:"historicos_removidos"`
	TarefasRemovidas         int64 `json:"tarefas_removidas"`
	RemanejamentosRemovidos  int64 `json:"remanejamentos_removidos"`
	SolicitacoesRemovidas    int64 `json:"solicitacoes_removidas"`
	FuncionariosDesmarcados  int64 `json:"funcionarios_desmarcados"`
}
