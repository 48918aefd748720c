package dto

// CriarSolicitacaoRequest criação de uma solicitação de remanejamento
type CriarSolicitacaoRequest struct {
	ContratoOrigemID     *string `json:"contrato_origem_id"`
	CentroCustoOrigemID  *string `json:"centro_custo_origem_id"`
	ContratoDestinoID    *string `json:"contrato_destino_id"`
	CentroCustoDestinoID *string `json:"centro_custo_destino_id"`
	Justificativa        string  `json:"justificativa"`
	Prioridade           string  `json:"prioridade"`
	FuncionarioIDs       []uint  `json:"funcionario_ids" binding:"required,min=1"`
}

// SolicitacaoListRequest listagem paginada de solicitações
type SolicitacaoListRequest struct {
	Status string `form:"status"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// AtualizarStatusPrestservRequest mudança do status de submissão de um remanejamento
type AtualizarStatusPrestservRequest struct {
	Status string `json:"status" binding:"required"`
}

// AtualizarStatusTarefaRequest mudança do status de uma tarefa
type AtualizarStatusTarefaRequest struct {
	Status     string `json:"status" binding:"required"`
	Observacao string `json:"observacao"`
}

// ObservacaoRequest observação avulsa em uma tarefa
type ObservacaoRequest struct {
	Texto string `json:"texto" binding:"required"`
}
