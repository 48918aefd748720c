package model

// Contrato contrato — tabela contratos
type Contrato struct {
	ID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Numero string `gorm:"type:varchar(30);not null;uniqueIndex"          json:"numero"`
	Nome   string `gorm:"type:varchar(150);not null"                     json:"nome"`
	Ativo  bool   `gorm:"not null;default:true"                          json:"ativo"`
	BaseModel
}

// TableName nome da tabela
func (Contrato) TableName() string { return "contratos" }

// CentroCusto centro de custo — tabela centros_custo
type CentroCusto struct {
	ID         string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Codigo     string  `gorm:"type:varchar(30);not null"                      json:"codigo"`
	Descricao  string  `gorm:"type:varchar(150)"                              json:"descricao,omitempty"`
	ContratoID *string `gorm:"type:uuid"                                      json:"contrato_id,omitempty"`
	Ativo      bool    `gorm:"not null;default:true"                          json:"ativo"`
	BaseModel

	Contrato *Contrato `gorm:"foreignKey:ContratoID" json:"contrato,omitempty"`
}

// TableName nome da tabela
func (CentroCusto) TableName() string { return "centros_custo" }

// Funcao função/cargo — tabela funcoes
type Funcao struct {
	ID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Nome  string `gorm:"type:varchar(120);not null;uniqueIndex"         json:"nome"`
	Ativo bool   `gorm:"not null;default:true"                          json:"ativo"`
	BaseModel
}

// TableName nome da tabela
func (Funcao) TableName() string { return "funcoes" }

// Treinamento treinamento/requisito — tabela treinamentos
type Treinamento struct {
	ID           string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Codigo       string `gorm:"type:varchar(30);not null;uniqueIndex"          json:"codigo"` // ex.: NR-35
	Nome         string `gorm:"type:varchar(150);not null"                     json:"nome"`
	CargaHoraria int    `gorm:"not null;default:0"                             json:"carga_horaria"`
	Ativo        bool   `gorm:"not null;default:true"                          json:"ativo"`
	BaseModel
}

// TableName nome da tabela
func (Treinamento) TableName() string { return "treinamentos" }
