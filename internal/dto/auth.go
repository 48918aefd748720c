package dto

// LoginRequest credenciais de acesso
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse tokens emitidos no login
type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Usuario      UsuarioResponse `json:"usuario"`
}

// UsuarioResponse visão pública do usuário
type UsuarioResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	Perfil   string  `json:"perfil"`
	EquipeID *string `json:"equipe_id,omitempty"`
}
