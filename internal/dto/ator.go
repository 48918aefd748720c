package dto

// Ator identidade de quem executa uma ação, para atribuição em histórico e eventos.
// Preenchido pelo middleware de autenticação ou pelas identidades automáticas do sistema.
type Ator struct {
	Nome      string  `json:"nome"`
	UsuarioID *string `json:"usuario_id,omitempty"`
	EquipeID  *string `json:"equipe_id,omitempty"`
}
