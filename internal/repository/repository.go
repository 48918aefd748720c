package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/GranTechDigital/crewflow-sub006/pkg/errors"
)

// AtomicFn executa fn dentro de uma transação; o *Repository recebido opera sobre a tx
type AtomicFn func(ctx context.Context, fn func(tx *Repository) error) error

// Repository ponto de agregação de todos os repositórios
type Repository struct {
	Funcionario   FuncionarioRepository
	Matriz        MatrizTreinamentoRepository
	Solicitacao   SolicitacaoRepository
	Remanejamento RemanejamentoRepository
	Tarefa        TarefaRepository
	Evento        EventoRepository
	Historico     HistoricoRepository
	Usuario       UsuarioRepository

	// Atomic executa a função dentro de uma transação do banco.
	// Operações em cascata (exclusão de agregado, purge) exigem tudo-ou-nada.
	Atomic AtomicFn
}

// NewRepository cria o agregado de repositórios sobre uma conexão gorm
func NewRepository(db *gorm.DB) *Repository {
	r := &Repository{
		Funcionario:   NewFuncionarioRepo(db),
		Matriz:        NewMatrizRepo(db),
		Solicitacao:   NewSolicitacaoRepo(db),
		Remanejamento: NewRemanejamentoRepo(db),
		Tarefa:        NewTarefaRepo(db),
		Evento:        NewEventoRepo(db),
		Historico:     NewHistoricoRepo(db),
		Usuario:       NewUsuarioRepo(db),
	}
	r.Atomic = func(ctx context.Context, fn func(tx *Repository) error) error {
		return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(NewRepository(tx))
		})
	}
	return r
}

// IsChaveDuplicada identifica violação de unicidade, venha do banco ou de mocks
func IsChaveDuplicada(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, pkgerrors.ErrChaveDuplicada)
}
