package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/repository"
)

// limite superior de linhas por exportação; acima disso o filtro deve ser estreitado
const maxLinhasExportacao = 10000

// ExportService relatórios derivados do domínio de remanejamento
type ExportService interface {
	// HistoricoXLSX exporta o livro-razão filtrado como planilha
	HistoricoXLSX(ctx context.Context, req *dto.HistoricoListRequest) ([]byte, error)
	// TarefasICS feed iCalendar dos prazos de tarefas abertas, opcionalmente por setor
	TarefasICS(ctx context.Context, setor string) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService cria o ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) HistoricoXLSX(ctx context.Context, req *dto.HistoricoListRequest) ([]byte, error) {
	filtro := repository.FiltroHistorico{
		SolicitacaoID:              req.SolicitacaoID,
		RemanejamentoFuncionarioID: req.RemanejamentoFuncionarioID,
		TarefaID:                   req.TarefaID,
		Entidade:                   req.Entidade,
		TipoAcao:                   req.TipoAcao,
		Desde:                      req.Desde,
	}
	entradas, total, err := s.repo.Historico.Query(ctx, filtro, 0, maxLinhasExportacao)
	if err != nil {
		return nil, err
	}
	if total > maxLinhasExportacao {
		s.logger.Warn("exportação de histórico truncada",
			zap.Int64("total", total), zap.Int("limite", maxLinhasExportacao))
	}

	f := excelize.NewFile()
	defer f.Close()

	const aba = "Histórico"
	f.SetSheetName(f.GetSheetName(0), aba)

	cabecalho := []interface{}{
		"ID", "Data da Ação", "Tipo de Ação", "Entidade",
		"Solicitação", "Remanejamento", "Tarefa",
		"Campo", "Valor Anterior", "Valor Novo",
		"Descrição", "Usuário",
	}
	if err := f.SetSheetRow(aba, "A1", &cabecalho); err != nil {
		return nil, err
	}
	negrito, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(aba, 1, 1, negrito)
	}

	for i, e := range entradas {
		linha := []interface{}{
			e.ID,
			e.DataAcao.Format("02/01/2006 15:04:05"),
			e.TipoAcao,
			e.Entidade,
			derefStr(e.SolicitacaoID),
			derefStr(e.RemanejamentoFuncionarioID),
			derefStr(e.TarefaID),
			derefStr(e.CampoAlterado),
			derefStr(e.ValorAnterior),
			derefStr(e.ValorNovo),
			e.DescricaoAcao,
			e.UsuarioNome,
		}
		celula := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(aba, celula, &linha); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *exportService) TarefasICS(ctx context.Context, setor string) (string, error) {
	var filtrar model.Setor
	if setor != "" {
		parsed, ok := model.ParseSetor(setor)
		if !ok {
			return "", ErrSetorInvalido
		}
		filtrar = parsed
	}

	tarefas, err := s.repo.Tarefa.ListAtivasComDataLimite(ctx)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//GranSystem//Tarefas de Remanejamento//PT")

	agora := time.Now().UTC()
	for i := range tarefas {
		t := &tarefas[i]
		if filtrar != "" && model.ClassificarSetor(t.Responsavel) != filtrar {
			continue
		}

		funcionario := ""
		if t.Remanejamento != nil && t.Remanejamento.Funcionario != nil {
			funcionario = t.Remanejamento.Funcionario.Nome
		}

		ev := cal.AddEvent(fmt.Sprintf("tarefa-%s@gransystem", t.ID))
		ev.SetDtStampTime(agora)
		ev.SetStartAt(*t.DataLimite)
		ev.SetEndAt(t.DataLimite.Add(time.Hour))
		if funcionario != "" {
			ev.SetSummary(fmt.Sprintf("%s — %s", t.Tipo, funcionario))
		} else {
			ev.SetSummary(t.Tipo)
		}
		ev.SetDescription(fmt.Sprintf("Setor: %s | Status: %s", t.Responsavel, t.Status))
	}

	return cal.Serialize(), nil
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
