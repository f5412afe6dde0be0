package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/audaroky/internal/translator"
)

type TranslateController struct {
	reader ReaderService
}

func NewTranslateController(reader ReaderService) *TranslateController {
	return &TranslateController{reader: reader}
}

type TranslateWordRequest struct {
	Word     string `json:"word" binding:"required"`
	Context  string `json:"context"`
	Language string `json:"language"`
}

type TranslateSentenceRequest struct {
	Sentence string `json:"sentence" binding:"required"`
	Language string `json:"language"`
}

type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Word handles POST /api/translate/word.
// A missing credential is reported in the body with status 200 so the client
// can route to the key entry screen.
func (tc *TranslateController) Word(c *gin.Context) {
	var req TranslateWordRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := tc.reader.TranslateWord(c.Request.Context(), req.Word, req.Context, req.Language)
	if err != nil {
		respondInternalError(c, err, "translate word")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Sentence handles POST /api/translate/sentence.
func (tc *TranslateController) Sentence(c *gin.Context) {
	var req TranslateSentenceRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := tc.reader.LoadSentence(c.Request.Context(), req.Sentence, req.Language)
	if err != nil {
		respondInternalError(c, err, "translate sentence")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Languages handles GET /api/languages.
func (tc *TranslateController) Languages(c *gin.Context) {
	names := translator.Languages()
	out := make([]LanguageInfo, 0, len(names))
	for code, name := range names {
		out = append(out, LanguageInfo{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	c.JSON(http.StatusOK, gin.H{
		"default":   translator.DefaultLanguage,
		"languages": out,
	})
}
