package authenticating

import "errors"

// Erros específicos para o contexto de autenticação
var (
	ErrInvalidAccessKey  = errors.New("chave de acesso inválida")
	ErrAccessKeyNotSet   = errors.New("chave de acesso do dashboard não configurada")
	ErrInvalidToken      = errors.New("token inválido")
	ErrUnexpectedSigning = errors.New("método de assinatura inesperado")
)
