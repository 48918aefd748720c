package model

// Funcionario funcionário — tabela funcionarios
type Funcionario struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"                       json:"id"`
	Matricula     string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"matricula"`
	Nome          string  `gorm:"type:varchar(150);not null"                     json:"nome"`
	ContratoID    *string `gorm:"type:uuid"                                      json:"contrato_id,omitempty"`
	CentroCustoID *string `gorm:"type:uuid"                                      json:"centro_custo_id,omitempty"`
	FuncaoID      *string `gorm:"type:uuid"                                      json:"funcao_id,omitempty"`
	EmMigracao    bool    `gorm:"not null;default:false"                         json:"em_migracao"`
	Ativo         bool    `gorm:"not null;default:true"                          json:"ativo"`
	BaseModel

	// Relações
	Contrato    *Contrato    `gorm:"foreignKey:ContratoID"    json:"contrato,omitempty"`
	CentroCusto *CentroCusto `gorm:"foreignKey:CentroCustoID" json:"centro_custo,omitempty"`
	Funcao      *Funcao      `gorm:"foreignKey:FuncaoID"      json:"funcao,omitempty"`
}

// TableName nome da tabela
func (Funcionario) TableName() string { return "funcionarios" }
