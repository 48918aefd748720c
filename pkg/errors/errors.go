package errors

import "errors"

// ErrOptimisticLock registro já modificado por outra operação
var ErrOptimisticLock = errors.New("registro modificado por outra operação, atualize e tente novamente")

// ErrChaveDuplicada violação da chave de unicidade
// (remanejamento_funcionario_id, tipo, responsavel) ou equivalente
var ErrChaveDuplicada = errors.New("registro duplicado para a chave de unicidade")
