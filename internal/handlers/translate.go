package handlers

import (
	"faqdesk/internal/translator"

	"github.com/gin-gonic/gin"
)

type detectRequest struct {
	Text string `json:"text" binding:"required" example:"bonjour"`
}

type translateRequest struct {
	Text       string `json:"text" binding:"required" example:"hello"`
	TargetLang string `json:"targetLang" binding:"required" example:"es"`
}

// relay writes the provider's reply unchanged, status code included.
func relay(c *gin.Context, resp translator.Response) {
	c.Data(resp.StatusCode, resp.ContentType, resp.Body)
}

// @Summary      Detect language
// @Description  Relays to the translation provider; its response is returned verbatim.
// @Tags         translate
// @Accept       json
// @Produce      json
// @Param        body  body      detectRequest  true  "Text"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/detect [post]
func (h *Handler) detectLanguage(c *gin.Context) {
	var req detectRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	resp, err := h.services.Detect(c.Request.Context(), req.Text)
	if err != nil {
		h.respondError(c, "translate_detect_failed", err)
		return
	}
	relay(c, resp)
}

// @Summary      Translate text
// @Description  Relays to the translation provider; its response is returned verbatim.
// @Tags         translate
// @Accept       json
// @Produce      json
// @Param        body  body      translateRequest  true  "Text and target language"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/translate [post]
func (h *Handler) translateText(c *gin.Context) {
	var req translateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	resp, err := h.services.Translate(c.Request.Context(), req.Text, req.TargetLang)
	if err != nil {
		h.respondError(c, "translate_text_failed", err, "target", req.TargetLang)
		return
	}
	relay(c, resp)
}
