package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
)

func seedTarefa(t *testing.T, env *testEnv, status string, dataConclusao *time.Time) *model.TarefaRemanejamento {
	t.Helper()
	tarefa := &model.TarefaRemanejamento{
		RemanejamentoFuncionarioID: uuid.New().String(),
		Tipo:                       "NR-35",
		Responsavel:                string(model.SetorTreinamento),
		Status:                     status,
		DataCriacao:                time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		DataConclusao:              dataConclusao,
	}
	if err := env.repo.Tarefa.Create(context.Background(), tarefa); err != nil {
		t.Fatalf("seed tarefa: %v", err)
	}
	return tarefa
}

func TestRegistrarMudancaStatusDeduplica(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	tarefa := seedTarefa(t, env, model.TarefaPendente, nil)

	quando := time.Date(2025, 3, 11, 10, 30, 0, 0, time.UTC)
	anterior := model.TarefaPendente
	for i := 0; i < 2; i++ {
		if err := env.eventos.RegistrarMudancaStatus(ctx, tarefa.ID, &anterior, model.TarefaEmAndamento, quando, dto.Ator{Nome: "Ana"}); err != nil {
			t.Fatalf("RegistrarMudancaStatus: %v", err)
		}
	}

	if len(env.st.eventos) != 1 {
		t.Errorf("eventos = %d, esperado 1 (dedup por instante exato)", len(env.st.eventos))
	}
}

func TestBackfillSintetizaDoHistorico(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	tarefa := seedTarefa(t, env, model.TarefaEmAndamento, nil)

	// Duas mudanças de status registradas só no histórico
	datas := []time.Time{
		time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC),
	}
	statuses := []string{model.TarefaPendente, model.TarefaEmAndamento}
	for i, d := range datas {
		if err := env.historico.Registrar(ctx, &model.HistoricoRemanejamento{
			TarefaID:      &tarefa.ID,
			TipoAcao:      model.AcaoAtualizacaoStatus,
			Entidade:      model.EntidadeTarefa,
			CampoAlterado: ptr("status"),
			ValorNovo:     &statuses[i],
			UsuarioNome:   "Ana",
			DataAcao:      d,
		}); err != nil {
			t.Fatalf("seed histórico: %v", err)
		}
	}

	resultado, err := env.eventos.Backfill(ctx, nil)
	if err != nil {
		t.Fatalf("Backfill: %v", err)
	}
	if resultado.EventosCriados != 2 {
		t.Fatalf("EventosCriados = %d, esperado 2", resultado.EventosCriados)
	}

	// Segunda execução: dedup impede eventos duplicados
	segunda, err := env.eventos.Backfill(ctx, nil)
	if err != nil {
		t.Fatalf("segundo Backfill: %v", err)
	}
	if segunda.EventosCriados != 0 {
		t.Errorf("segundo backfill criou %d eventos, esperado 0", segunda.EventosCriados)
	}
	if len(env.st.eventos) != 2 {
		t.Errorf("eventos = %d, esperado 2", len(env.st.eventos))
	}
}

func TestBackfillTarefaSemHistorico(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	conclusao := time.Date(2025, 4, 1, 16, 0, 0, 0, time.UTC)
	tarefa := seedTarefa(t, env, model.TarefaConcluida, &conclusao)

	resultado, err := env.eventos.Backfill(ctx, nil)
	if err != nil {
		t.Fatalf("Backfill: %v", err)
	}
	if resultado.EventosCriados != 1 {
		t.Fatalf("EventosCriados = %d, esperado 1", resultado.EventosCriados)
	}

	ev := env.st.eventos[0]
	if ev.TarefaID != tarefa.ID || ev.StatusNovo != model.TarefaConcluida {
		t.Errorf("evento sintetizado inesperado: %+v", ev)
	}
	if !ev.DataEvento.Equal(conclusao) {
		t.Errorf("data_evento = %v, esperado a data de conclusão %v", ev.DataEvento, conclusao)
	}
}

func TestBackfillTarefaSemHistoricoNemConclusao(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	tarefa := seedTarefa(t, env, model.TarefaPendente, nil)

	if _, err := env.eventos.Backfill(ctx, nil); err != nil {
		t.Fatalf("Backfill: %v", err)
	}
	if len(env.st.eventos) != 1 {
		t.Fatalf("eventos = %d, esperado 1", len(env.st.eventos))
	}
	if !env.st.eventos[0].DataEvento.Equal(tarefa.DataCriacao) {
		t.Errorf("data_evento = %v, esperado a data de criação %v",
			env.st.eventos[0].DataEvento, tarefa.DataCriacao)
	}
}

func TestCorrigirDatasConclusao(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	conclusao := time.Date(2025, 4, 1, 16, 0, 0, 0, time.UTC)
	tarefa := seedTarefa(t, env, model.TarefaConcluida, &conclusao)

	// Evento concluído gravado com deriva de uma hora
	if err := env.repo.Evento.Create(ctx, &model.TarefaStatusEvento{
		TarefaID:   tarefa.ID,
		StatusNovo: model.TarefaConcluida,
		DataEvento: conclusao.Add(time.Hour),
	}); err != nil {
		t.Fatalf("seed evento: %v", err)
	}

	resultado, err := env.eventos.CorrigirDatasConclusao(ctx)
	if err != nil {
		t.Fatalf("CorrigirDatasConclusao: %v", err)
	}
	if resultado.EventosCorrigidos != 1 {
		t.Fatalf("EventosCorrigidos = %d, esperado 1", resultado.EventosCorrigidos)
	}
	if !env.st.eventos[0].DataEvento.Equal(conclusao) {
		t.Errorf("data_evento = %v, esperado %v", env.st.eventos[0].DataEvento, conclusao)
	}

	// Execução repetida não altera nada
	segunda, err := env.eventos.CorrigirDatasConclusao(ctx)
	if err != nil {
		t.Fatalf("segunda correção: %v", err)
	}
	if segunda.EventosCorrigidos != 0 {
		t.Errorf("segunda correção corrigiu %d, esperado 0", segunda.EventosCorrigidos)
	}
}
