package handlers

import (
	"context"
	"net/http"
	"testing"

	"tarefas_webapp/internal/domain"
)

func TestSaveCategoryDefaultsColor(t *testing.T) {
	env := newTestEnv(t, HandlerConfig{})

	w := env.do(t, http.MethodPost, "/api/categorias", map[string]any{"nome": "Trabalho"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	resp := decode(t, w)
	if resp["sucesso"] != true {
		t.Fatalf("sucesso = %v", resp["sucesso"])
	}

	id := int64(resp["id"].(float64))
	if got := env.categories.cats[id].Color; got != domain.DefaultCategoryColor {
		t.Fatalf("color = %q, want %q", got, domain.DefaultCategoryColor)
	}
}

func TestSaveCategoryRequiresName(t *testing.T) {
	env := newTestEnv(t, HandlerConfig{})

	w := env.do(t, http.MethodPost, "/api/categorias", map[string]any{"cor": "#FF0000"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp := decode(t, w); resp["erro"] != "Nome é obrigatório" {
		t.Fatalf("erro = %q", resp["erro"])
	}
}

func TestSaveCategoryUpdate(t *testing.T) {
	env := newTestEnv(t, HandlerConfig{})
	env.categories.Insert(context.Background(), &domain.Category{Name: "Estudo", Color: "#00FF00"})

	w := env.do(t, http.MethodPost, "/api/categorias", map[string]any{
		"id": 1, "nome": "Estudos", "cor": "#0000FF",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	cat := env.categories.cats[1]
	if cat.Name != "Estudos" || cat.Color != "#0000FF" {
		t.Fatalf("category after update = %+v", cat)
	}
}

func TestListCategoriesIdempotentAndOrdered(t *testing.T) {
	env := newTestEnv(t, HandlerConfig{})
	env.categories.Insert(context.Background(), &domain.Category{Name: "Pessoal", Color: "#FFFFFF"})
	env.categories.Insert(context.Background(), &domain.Category{Name: "Casa", Color: "#FFFFFF"})

	first := env.do(t, http.MethodGet, "/api/categorias", nil)
	second := env.do(t, http.MethodGet, "/api/categorias", nil)

	if first.Body.String() != second.Body.String() {
		t.Fatal("two reads without writes returned different bodies")
	}

	list := decodeList(t, first)
	if len(list) != 2 || list[0]["nome"] != "Casa" || list[1]["nome"] != "Pessoal" {
		t.Fatalf("list not name-ascending: %v", list)
	}
}

func TestDeleteCategory(t *testing.T) {
	env := newTestEnv(t, HandlerConfig{})
	env.categories.Insert(context.Background(), &domain.Category{Name: "Velha", Color: "#FFFFFF"})

	w := env.do(t, http.MethodPost, "/api/categorias?acao=excluir&id=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if len(env.categories.cats) != 0 {
		t.Fatal("category survived the delete")
	}

	w = env.do(t, http.MethodPost, "/api/categorias?acao=excluir&id=abc", nil)
	if resp := decode(t, w); resp["erro"] != "ID inválido" {
		t.Fatalf("erro = %q", resp["erro"])
	}
}
