package reporting

import "errors"

// Erros específicos para o contexto do dashboard
var (
	// ErrNoSnapshot indica que nenhum ciclo de atualização foi concluído ainda
	ErrNoSnapshot = errors.New("nenhum ciclo de dados concluído")

	// ErrRefreshCanceled indica que o ciclo foi abandonado antes de concluir
	ErrRefreshCanceled = errors.New("ciclo de atualização cancelado")
)
