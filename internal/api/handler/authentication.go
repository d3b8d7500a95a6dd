package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/store-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-performance-api/pkg/apiErrors"
	"github.com/vfg2006/store-performance-api/pkg/log"
)

type loginRequest struct {
	AccessKey string `json:"access_key"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login troca a chave de acesso do dashboard por um token de visualização
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request loginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if request.AccessKey == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar a chave de acesso", nil)
			return
		}

		token, err := service.Login(request.AccessKey)
		if err != nil {
			logger.WithError(err).Warn("login: chave de acesso recusada")
			apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Chave de acesso inválida", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(loginResponse{Token: token}); err != nil {
			logger.WithError(err).Error("login: erro ao codificar resposta")
		}
	})
}
