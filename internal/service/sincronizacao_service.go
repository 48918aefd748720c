package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
	pkgerrors "github.com/GranTechDigital/crewflow-sub006/pkg/errors"
)

// ── Erros do módulo de sincronização ──

var (
	ErrSetorInvalido = errors.New("setor inválido")
)

// SincronizacaoService reconciliação entre a matriz de treinamento e as tarefas
// existentes dos remanejamentos ativos.
//
// O algoritmo trabalha sobre um snapshot único das tarefas de cada remanejamento,
// tirado antes de qualquer mutação: uma tarefa nunca é cancelada e reativada na
// mesma passada por releitura de estado já alterado. Falhas individuais não
// abortam o escopo.
type SincronizacaoService interface {
	// Sincronizar aplica o conjunto mínimo de criações/cancelamentos/reativações
	// para convergir as tarefas do escopo ao que a matriz exige.
	Sincronizar(ctx context.Context, req *dto.SincronizarRequest, ator dto.Ator) (*dto.ResultadoSincronizacao, error)
	// DesfazerReativacoesRecentes reverte reativações automáticas dentro da janela,
	// desde que nenhuma ação posterior tenha tocado a tarefa.
	DesfazerReativacoesRecentes(ctx context.Context, janelaMinutos int, ator dto.Ator) (*dto.ResultadoDesfazer, error)
}

type sincronizacaoService struct {
	repo         *repository.Repository
	historico    HistoricoService
	eventos      EventoService
	janelaPadrao int
	logger       *zap.Logger
}

// NewSincronizacaoService cria o SincronizacaoService
func NewSincronizacaoService(repo *repository.Repository, historico HistoricoService, eventos EventoService, janelaPadraoMin int, logger *zap.Logger) SincronizacaoService {
	if janelaPadraoMin <= 0 {
		janelaPadraoMin = 60
	}
	return &sincronizacaoService{
		repo:         repo,
		historico:    historico,
		eventos:      eventos,
		janelaPadrao: janelaPadraoMin,
		logger:       logger,
	}
}

// requisito uma tarefa que a matriz exige para um remanejamento
type requisito struct {
	tipo  string
	setor model.Setor
}

func (s *sincronizacaoService) Sincronizar(ctx context.Context, req *dto.SincronizarRequest, ator dto.Ator) (*dto.ResultadoSincronizacao, error) {
	setores, err := resolverSetores(req.Setores)
	if err != nil {
		return nil, err
	}
	if ator.Nome == "" {
		ator.Nome = model.IdentidadeSincronizacaoManual
	}

	// 1. Conjunto de trabalho: remanejamentos de funcionários em migração
	rems, err := s.repo.Remanejamento.ListEscopoAtivo(ctx, req.FuncionarioIDs, req.RemanejamentoIDs)
	if err != nil {
		return nil, err
	}

	resultado := &dto.ResultadoSincronizacao{}
	for i := range rems {
		s.sincronizarRemanejamento(ctx, &rems[i], setores, req, ator, resultado)
	}

	s.logger.Info("sincronização concluída",
		zap.Int("escopo", len(rems)),
		zap.Int("criadas", resultado.Criadas),
		zap.Int("canceladas", resultado.Canceladas),
		zap.Int("reativadas", resultado.Reativadas),
		zap.Int("falhas", resultado.Falhas),
		zap.Bool("criar_faltantes", req.CriarFaltantes),
	)
	return resultado, nil
}

func resolverSetores(nomes []string) (map[model.Setor]bool, error) {
	setores := make(map[model.Setor]bool)
	if len(nomes) == 0 {
		for _, s := range model.SetoresPadrao {
			setores[s] = true
		}
		return setores, nil
	}
	for _, nome := range nomes {
		setor, ok := model.ParseSetor(nome)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrSetorInvalido, nome)
		}
		setores[setor] = true
	}
	return setores, nil
}

// sincronizarRemanejamento reconcilia um único remanejamento. Erros individuais
// viram itens de falha no resultado; nada aqui aborta o lote.
func (s *sincronizacaoService) sincronizarRemanejamento(ctx context.Context, rem *model.RemanejamentoFuncionario, setores map[model.Setor]bool, req *dto.SincronizarRequest, ator dto.Ator, resultado *dto.ResultadoSincronizacao) {
	funcionario := ""
	if rem.Funcionario != nil {
		funcionario = rem.Funcionario.Nome
	}

	requisitos, ok := s.requisitosDaMatriz(ctx, rem, setores)
	if !ok {
		// Sem contrato ou função resolvíveis não há o que reconciliar
		if req.Verbose {
			resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
				RemanejamentoID: rem.ID,
				Funcionario:     funcionario,
				Operacao:        dto.OperacaoIgnorada,
			})
		}
		return
	}

	// Snapshot único das tarefas existentes, antes de qualquer mutação
	tarefas, err := s.repo.Tarefa.ListByRemanejamento(ctx, rem.ID)
	if err != nil {
		resultado.Falhas++
		resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
			RemanejamentoID: rem.ID,
			Funcionario:     funcionario,
			Operacao:        dto.OperacaoFalha,
			Erro:            err.Error(),
		})
		return
	}

	existentes := make(map[string]*model.TarefaRemanejamento)
	for i := range tarefas {
		t := &tarefas[i]
		if !setores[model.ClassificarSetor(t.Responsavel)] {
			continue // tarefas de setores fora do escopo não são tocadas
		}
		existentes[t.Chave()] = t
	}

	// Faltantes e reativações
	for chave, r := range requisitos {
		t, existe := existentes[chave]
		switch {
		case !existe && req.CriarFaltantes:
			s.criarTarefa(ctx, rem, r, funcionario, req.Verbose, ator, resultado)
		case !existe:
			resultado.FaltantesIgnoradas++
			if req.Verbose {
				resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
					RemanejamentoID: rem.ID,
					Funcionario:     funcionario,
					Tipo:            r.tipo,
					Setor:           string(r.setor),
					Operacao:        dto.OperacaoFaltanteIgnorada,
				})
			}
		case t.Status == model.TarefaCancelada:
			s.reativarTarefa(ctx, rem, t, funcionario, req.Verbose, ator, resultado)
		default:
			// Tarefa ativa e exigida: a progressão própria dela nunca é alterada
			resultado.Inalteradas++
			if req.Verbose {
				resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
					RemanejamentoID: rem.ID,
					Funcionario:     funcionario,
					Tipo:            t.Tipo,
					Setor:           string(r.setor),
					Operacao:        dto.OperacaoInalterada,
				})
			}
		}
	}

	// Cancelamentos: ativas no snapshot que a matriz não exige mais
	for chave, t := range existentes {
		if _, exigida := requisitos[chave]; exigida {
			continue
		}
		if !t.Ativa() {
			continue
		}
		s.cancelarTarefa(ctx, rem, t, funcionario, req.Verbose, ator, resultado)
	}
}

// requisitosDaMatriz resolve as entradas ativas da matriz para o (contrato, função)
// do remanejamento, restritas aos setores do escopo. O contrato de destino da
// solicitação prevalece; na falta dele vale o contrato atual do funcionário.
func (s *sincronizacaoService) requisitosDaMatriz(ctx context.Context, rem *model.RemanejamentoFuncionario, setores map[model.Setor]bool) (map[string]requisito, bool) {
	var contratoID string
	if rem.Solicitacao != nil && rem.Solicitacao.ContratoDestinoID != nil {
		contratoID = *rem.Solicitacao.ContratoDestinoID
	} else if rem.Funcionario != nil && rem.Funcionario.ContratoID != nil {
		contratoID = *rem.Funcionario.ContratoID
	}
	var funcaoID string
	if rem.Funcionario != nil && rem.Funcionario.FuncaoID != nil {
		funcaoID = *rem.Funcionario.FuncaoID
	}
	if contratoID == "" || funcaoID == "" {
		return nil, false
	}

	entradas, err := s.repo.Matriz.ListPorContratoFuncao(ctx, contratoID, funcaoID)
	if err != nil {
		s.logger.Warn("falha ao consultar a matriz de treinamento",
			zap.String("remanejamento_id", rem.ID), zap.Error(err))
		return nil, false
	}

	requisitos := make(map[string]requisito)
	for i := range entradas {
		m := &entradas[i]
		if !m.ExigeTarefa() {
			continue
		}
		setor, _ := model.ParseSetor(m.Setor)
		if !setores[setor] {
			continue
		}
		tipo := m.TreinamentoID
		if m.Treinamento != nil && m.Treinamento.Codigo != "" {
			tipo = m.Treinamento.Codigo
		}
		requisitos[model.ChaveTarefa(rem.ID, tipo, setor)] = requisito{tipo: tipo, setor: setor}
	}
	return requisitos, true
}

func (s *sincronizacaoService) criarTarefa(ctx context.Context, rem *model.RemanejamentoFuncionario, r requisito, funcionario string, verbose bool, ator dto.Ator, resultado *dto.ResultadoSincronizacao) {
	agora := time.Now().UTC()
	t := &model.TarefaRemanejamento{
		RemanejamentoFuncionarioID: rem.ID,
		Tipo:                       r.tipo,
		Responsavel:                string(r.setor),
		Descricao:                  fmt.Sprintf("Requisito %s exigido pela matriz de treinamento", r.tipo),
		Status:                     model.TarefaPendente,
		DataCriacao:                agora,
	}
	if err := s.repo.Tarefa.Create(ctx, t); err != nil {
		// Violação da chave única = outra execução criou a mesma tarefa; falha segura
		resultado.Falhas++
		resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
			RemanejamentoID: rem.ID,
			Funcionario:     funcionario,
			Tipo:            r.tipo,
			Setor:           string(r.setor),
			Operacao:        dto.OperacaoFalha,
			Erro:            err.Error(),
		})
		if !repository.IsChaveDuplicada(err) {
			s.logger.Warn("falha ao criar tarefa na sincronização",
				zap.String("remanejamento_id", rem.ID), zap.String("tipo", r.tipo), zap.Error(err))
		}
		return
	}

	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		SolicitacaoID:              &rem.SolicitacaoID,
		RemanejamentoFuncionarioID: &rem.ID,
		TarefaID:                   &t.ID,
		TipoAcao:                   model.AcaoCriacao,
		Entidade:                   model.EntidadeTarefa,
		DescricaoAcao:              fmt.Sprintf("Tarefa %s (%s) criada pela sincronização com a matriz", r.tipo, r.setor),
		UsuarioNome:                ator.Nome,
		UsuarioID:                  ator.UsuarioID,
		EquipeID:                   ator.EquipeID,
		DataAcao:                   agora,
	})
	if err := s.eventos.RegistrarMudancaStatus(ctx, t.ID, nil, model.TarefaPendente, agora, ator); err != nil {
		s.logger.Warn("falha ao gravar evento de criação (ignorada)",
			zap.String("tarefa_id", t.ID), zap.Error(err))
	}

	resultado.Criadas++
	if verbose {
		resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
			RemanejamentoID: rem.ID,
			Funcionario:     funcionario,
			Tipo:            r.tipo,
			Setor:           string(r.setor),
			Operacao:        dto.OperacaoCriada,
		})
	}
}

func (s *sincronizacaoService) cancelarTarefa(ctx context.Context, rem *model.RemanejamentoFuncionario, t *model.TarefaRemanejamento, funcionario string, verbose bool, ator dto.Ator, resultado *dto.ResultadoSincronizacao) {
	agora := time.Now().UTC()
	anterior := t.Status
	if err := s.repo.Tarefa.UpdateStatus(ctx, t.ID, model.TarefaCancelada, nil); err != nil {
		resultado.Falhas++
		resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
			RemanejamentoID: rem.ID,
			Funcionario:     funcionario,
			Tipo:            t.Tipo,
			Setor:           string(model.ClassificarSetor(t.Responsavel)),
			Operacao:        dto.OperacaoFalha,
			Erro:            err.Error(),
		})
		return
	}

	if err := s.repo.Tarefa.AddObservacao(ctx, &model.TarefaObservacao{
		TarefaID: t.ID,
		Texto:    "Tarefa cancelada automaticamente: o requisito saiu da matriz de treinamento",
		Autor:    ator.Nome,
		Data:     agora,
	}); err != nil {
		s.logger.Warn("falha ao gravar observação de cancelamento (ignorada)",
			zap.String("tarefa_id", t.ID), zap.Error(err))
	}
	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		SolicitacaoID:              &rem.SolicitacaoID,
		RemanejamentoFuncionarioID: &rem.ID,
		TarefaID:                   &t.ID,
		TipoAcao:                   model.AcaoCancelamento,
		Entidade:                   model.EntidadeTarefa,
		CampoAlterado:              ptr("status"),
		ValorAnterior:              &anterior,
		ValorNovo:                  ptr(model.TarefaCancelada),
		DescricaoAcao:              fmt.Sprintf("Tarefa %s cancelada pela sincronização com a matriz", t.Tipo),
		UsuarioNome:                ator.Nome,
		UsuarioID:                  ator.UsuarioID,
		EquipeID:                   ator.EquipeID,
		DataAcao:                   agora,
	})
	if err := s.eventos.RegistrarMudancaStatus(ctx, t.ID, &anterior, model.TarefaCancelada, agora, ator); err != nil {
		s.logger.Warn("falha ao gravar evento de cancelamento (ignorada)",
			zap.String("tarefa_id", t.ID), zap.Error(err))
	}

	resultado.Canceladas++
	if verbose {
		resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
			RemanejamentoID: rem.ID,
			Funcionario:     funcionario,
			Tipo:            t.Tipo,
			Setor:           string(model.ClassificarSetor(t.Responsavel)),
			Operacao:        dto.OperacaoCancelada,
		})
	}
}

func (s *sincronizacaoService) reativarTarefa(ctx context.Context, rem *model.RemanejamentoFuncionario, t *model.TarefaRemanejamento, funcionario string, verbose bool, ator dto.Ator, resultado *dto.ResultadoSincronizacao) {
	agora := time.Now().UTC()
	if err := s.repo.Tarefa.UpdateStatus(ctx, t.ID, model.TarefaPendente, nil); err != nil {
		resultado.Falhas++
		resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
			RemanejamentoID: rem.ID,
			Funcionario:     funcionario,
			Tipo:            t.Tipo,
			Setor:           string(model.ClassificarSetor(t.Responsavel)),
			Operacao:        dto.OperacaoFalha,
			Erro:            err.Error(),
		})
		return
	}

	if err := s.repo.Tarefa.AddObservacao(ctx, &model.TarefaObservacao{
		TarefaID: t.ID,
		Texto:    "Tarefa reativada automaticamente: o requisito voltou à matriz de treinamento",
		Autor:    ator.Nome,
		Data:     agora,
	}); err != nil {
		s.logger.Warn("falha ao gravar observação de reativação (ignorada)",
			zap.String("tarefa_id", t.ID), zap.Error(err))
	}
	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		SolicitacaoID:              &rem.SolicitacaoID,
		RemanejamentoFuncionarioID: &rem.ID,
		TarefaID:                   &t.ID,
		TipoAcao:                   model.AcaoReativacao,
		Entidade:                   model.EntidadeTarefa,
		CampoAlterado:              ptr("status"),
		ValorAnterior:              ptr(model.TarefaCancelada),
		ValorNovo:                  ptr(model.TarefaPendente),
		DescricaoAcao:              fmt.Sprintf("Tarefa %s reativada pela sincronização com a matriz", t.Tipo),
		UsuarioNome:                ator.Nome,
		UsuarioID:                  ator.UsuarioID,
		EquipeID:                   ator.EquipeID,
		DataAcao:                   agora,
	})
	if err := s.eventos.RegistrarMudancaStatus(ctx, t.ID, ptr(model.TarefaCancelada), model.TarefaPendente, agora, ator); err != nil {
		s.logger.Warn("falha ao gravar evento de reativação (ignorada)",
			zap.String("tarefa_id", t.ID), zap.Error(err))
	}

	resultado.Reativadas++
	if verbose {
		resultado.Itens = append(resultado.Itens, dto.ItemSincronizacao{
			RemanejamentoID: rem.ID,
			Funcionario:     funcionario,
			Tipo:            t.Tipo,
			Setor:           string(model.ClassificarSetor(t.Responsavel)),
			Operacao:        dto.OperacaoReativada,
		})
	}
}

func (s *sincronizacaoService) DesfazerReativacoesRecentes(ctx context.Context, janelaMinutos int, ator dto.Ator) (*dto.ResultadoDesfazer, error) {
	if janelaMinutos <= 0 {
		janelaMinutos = s.janelaPadrao
	}
	if ator.Nome == "" {
		ator.Nome = model.IdentidadeSistema
	}
	desde := time.Now().UTC().Add(-time.Duration(janelaMinutos) * time.Minute)

	reativacoes, err := s.repo.Historico.ListReativacoesDesde(ctx, desde, []string{
		model.IdentidadeSincronizacaoManual,
		model.IdentidadeSistema,
	})
	if err != nil {
		return nil, err
	}

	resultado := &dto.ResultadoDesfazer{}
	for i := range reativacoes {
		reativacao := &reativacoes[i]
		if reativacao.TarefaID == nil {
			continue
		}

		t, err := s.repo.Tarefa.GetByID(ctx, *reativacao.TarefaID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("falha ao carregar tarefa na reversão",
					zap.String("tarefa_id", *reativacao.TarefaID), zap.Error(err))
			}
			continue
		}

		// Guarda 1: ninguém progrediu a tarefa desde a reativação
		if t.Status != model.TarefaPendente {
			continue
		}
		// Guarda 2: a reativação é a última entrada de histórico da tarefa
		ultimo, err := s.repo.Historico.GetUltimoPorTarefa(ctx, t.ID)
		if err != nil {
			s.logger.Warn("falha ao consultar o histórico na reversão",
				zap.String("tarefa_id", t.ID), zap.Error(err))
			continue
		}
		if ultimo.ID != reativacao.ID {
			continue
		}

		if err := s.reverterTarefa(ctx, reativacao, t, ator); err != nil {
			// Corrida perdida para outra operação não é falha: a guarda condicional
			// do update apenas recusou sobrescrever o estado mais novo
			if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
				s.logger.Warn("falha ao reverter reativação",
					zap.String("tarefa_id", t.ID), zap.Error(err))
			}
			continue
		}
		resultado.Revertidas++
	}

	s.logger.Info("reversão de reativações concluída",
		zap.Int("candidatas", len(reativacoes)),
		zap.Int("revertidas", resultado.Revertidas),
		zap.Int("janela_minutos", janelaMinutos),
	)
	return resultado, nil
}

func (s *sincronizacaoService) reverterTarefa(ctx context.Context, reativacao *model.HistoricoRemanejamento, t *model.TarefaRemanejamento, ator dto.Ator) error {
	agora := time.Now().UTC()
	// Update condicional: se a tarefa saiu de PENDENTE entre a checagem das
	// guardas e este ponto, a reversão é recusada em vez de sobrescrever
	if err := s.repo.Tarefa.UpdateStatusFrom(ctx, t.ID, model.TarefaPendente, model.TarefaCancelada); err != nil {
		return err
	}

	if err := s.repo.Tarefa.AddObservacao(ctx, &model.TarefaObservacao{
		TarefaID: t.ID,
		Texto:    "Reativação automática revertida dentro da janela de desfazer",
		Autor:    ator.Nome,
		Data:     agora,
	}); err != nil {
		s.logger.Warn("falha ao gravar observação de reversão (ignorada)",
			zap.String("tarefa_id", t.ID), zap.Error(err))
	}
	s.historico.RegistrarSeguro(ctx, &model.HistoricoRemanejamento{
		SolicitacaoID:              reativacao.SolicitacaoID,
		RemanejamentoFuncionarioID: reativacao.RemanejamentoFuncionarioID,
		TarefaID:                   &t.ID,
		TipoAcao:                   model.AcaoReverter,
		Entidade:                   model.EntidadeTarefa,
		CampoAlterado:              ptr("status"),
		ValorAnterior:              ptr(model.TarefaPendente),
		ValorNovo:                  ptr(model.TarefaCancelada),
		DescricaoAcao:              fmt.Sprintf("Reativação da tarefa %s revertida automaticamente", t.Tipo),
		UsuarioNome:                ator.Nome,
		UsuarioID:                  ator.UsuarioID,
		EquipeID:                   ator.EquipeID,
		DataAcao:                   agora,
	})
	if err := s.eventos.RegistrarMudancaStatus(ctx, t.ID, ptr(model.TarefaPendente), model.TarefaCancelada, agora, ator); err != nil {
		s.logger.Warn("falha ao gravar evento de reversão (ignorada)",
			zap.String("tarefa_id", t.ID), zap.Error(err))
	}
	return nil
}
