package dto

// CriarMatrizRequest criação de uma entrada da matriz de treinamento
type CriarMatrizRequest struct {
	ContratoID          string `json:"contrato_id" binding:"required"`
	FuncaoID            string `json:"funcao_id" binding:"required"`
	TreinamentoID       string `json:"treinamento_id" binding:"required"`
	TipoObrigatoriedade string `json:"tipo_obrigatoriedade" binding:"required"`
	Setor               string `json:"setor" binding:"required"`
}

// AtualizarMatrizRequest atualização parcial de uma entrada da matriz
type AtualizarMatrizRequest struct {
	TipoObrigatoriedade *string `json:"tipo_obrigatoriedade"`
	Setor               *string `json:"setor"`
	Ativo               *bool   `json:"ativo"`
}

// MatrizListRequest listagem paginada da matriz
type MatrizListRequest struct {
	ContratoID string `form:"contrato_id"`
	FuncaoID   string `form:"funcao_id"`
	Limit      int    `form:"limit,default=50"`
	Offset     int    `form:"offset,default=0"`
}
