package model

// ── Perfis de acesso ──

const (
	PerfilAdmin  = "admin"
	PerfilPadrao = "padrao"
)

// Usuario usuário da aplicação — tabela usuarios
type Usuario struct {
	ID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nome      string  `gorm:"type:varchar(150);not null"                     json:"nome"`
	Email     string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	SenhaHash string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Perfil    string  `gorm:"type:varchar(20);not null;default:'padrao'"     json:"perfil"`
	EquipeID  *string `gorm:"type:uuid"                                      json:"equipe_id,omitempty"`
	Ativo     bool    `gorm:"not null;default:true"                          json:"ativo"`
	BaseModel
}

// TableName nome da tabela
func (Usuario) TableName() string { return "usuarios" }
