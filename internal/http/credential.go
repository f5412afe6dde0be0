package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audaroky/internal/credentials"
)

type CredentialController struct {
	store CredentialStore
}

func NewCredentialController(store CredentialStore) *CredentialController {
	return &CredentialController{store: store}
}

type SetCredentialRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// Status handles GET /api/credential/status. The key itself is never returned.
func (cc *CredentialController) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"configured": cc.store.HasAPIKey()})
}

// Set handles PUT /api/credential.
func (cc *CredentialController) Set(c *gin.Context) {
	var req SetCredentialRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := cc.store.SetAPIKey(req.APIKey); err != nil {
		if errors.Is(err, credentials.ErrEmptyCredential) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "save credential")
		return
	}
	respondSuccess(c, "credential saved")
}

// Delete handles DELETE /api/credential.
func (cc *CredentialController) Delete(c *gin.Context) {
	if err := cc.store.Clear(); err != nil {
		respondInternalError(c, err, "clear credential")
		return
	}
	respondSuccess(c, "credential removed")
}
