package dto

// SincronizarRequest parâmetros de uma execução da sincronização
type SincronizarRequest struct {
	Setores          []string `json:"setores"`
	FuncionarioIDs   []uint   `json:"funcionario_ids"`
	RemanejamentoIDs []string `json:"remanejamento_ids"`
	CriarFaltantes   bool     `json:"criar_faltantes"`
	Verbose          bool     `json:"verbose"`
}

// ── Operações reportadas por item ──

const (
	OperacaoCriada           = "CRIADA"
	OperacaoCancelada        = "CANCELADA"
	OperacaoReativada        = "REATIVADA"
	OperacaoInalterada       = "INALTERADA"
	OperacaoFaltanteIgnorada = "FALTANTE_IGNORADA"
	OperacaoFalha            = "FALHA"
	OperacaoIgnorada         = "IGNORADA"
)

// ItemSincronizacao detalhe de uma operação aplicada (modo verbose)
type ItemSincronizacao struct {
	RemanejamentoID string `json:"remanejamento_id"`
	Funcionario     string `json:"funcionario,omitempty"`
	Tipo            string `json:"tipo,omitempty"`
	Setor           string `json:"setor,omitempty"`
	Operacao        string `json:"operacao"`
	Erro            string `json:"erro,omitempty"`
}

// ResultadoSincronizacao resumo de uma execução da sincronização
type ResultadoSincronizacao struct {
	Criadas            int                 `json:"criadas"`
	Canceladas         int                 `json:"canceladas"`
	Reativadas         int                 `json:"reativadas"`
	Inalteradas        int                 `json:"inalteradas"`
	FaltantesIgnoradas int                 `json:"faltantes_ignoradas"`
	Falhas             int                 `json:"falhas"`
	Itens              []ItemSincronizacao `json:"itens,omitempty"`
}

// DesfazerRequest parâmetros da reversão de reativações automáticas
type DesfazerRequest struct {
	JanelaMinutos int `json:"janela_minutos"`
}

// ResultadoDesfazer resumo da reversão
type ResultadoDesfazer struct {
	Revertidas int `json:"revertidas"`
}
