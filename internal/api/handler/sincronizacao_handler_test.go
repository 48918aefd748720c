package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GranTechDigital/crewflow-sub006/internal/api/middleware"
	"github.com/GranTechDigital/crewflow-sub006/internal/dto"
	"github.com/GranTechDigital/crewflow-sub006/internal/model"
	"github.com/GranTechDigital/crewflow-sub006/internal/service"
)

// sincronizacaoStub captura o ator repassado ao serviço
type sincronizacaoStub struct {
	ator dto.Ator
}

func (s *sincronizacaoStub) Sincronizar(_ context.Context, _ *dto.SincronizarRequest, ator dto.Ator) (*dto.ResultadoSincronizacao, error) {
	s.ator = ator
	return &dto.ResultadoSincronizacao{}, nil
}

func (s *sincronizacaoStub) DesfazerReativacoesRecentes(_ context.Context, _ int, ator dto.Ator) (*dto.ResultadoDesfazer, error) {
	s.ator = ator
	return &dto.ResultadoDesfazer{}, nil
}

func TestSincronizarAtribuiIdentidadeAutomatica(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &sincronizacaoStub{}
	h := New(&service.Service{Sincronizacao: stub}, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/sincronizacao",
		strings.NewReader(`{"criar_faltantes":true}`))
	c.Request.Header.Set("Content-Type", "application/json")
	usuarioID := "5f0f5de7-95a7-4fd1-a6ff-3d5f9e64b001"
	c.Set(middleware.CtxUsuarioNome, "Ana")
	c.Set(middleware.CtxUsuarioID, usuarioID)

	h.Sincronizar(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}
	// As reativações desta rota precisam casar com o filtro de identidade da
	// janela de desfazer; o usuário autenticado fica apenas no usuario_id
	if stub.ator.Nome != model.IdentidadeSincronizacaoManual {
		t.Errorf("ator = %q, esperado a identidade da sincronização manual", stub.ator.Nome)
	}
	if stub.ator.UsuarioID == nil || *stub.ator.UsuarioID != usuarioID {
		t.Error("usuario_id do JWT não foi preservado na auditoria")
	}
}
