package handlers

import (
	"net/http"

	"faqdesk/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusOK      = "ok"
	msgFAQDeleted = "FAQ deleted"
)

// faqRequest is the body of POST and PUT /faqs. PUT sends the full document:
// optional fields left out are cleared.
type faqRequest struct {
	Image     string `json:"image" example:"https://cdn.example.com/q1.png"`
	ImageName string `json:"imageName" example:"q1.png"`
	Question  string `json:"question" binding:"required" example:"How do I reset my password?"`
	Answer    string `json:"answer" binding:"required" example:"Use the link on the login page."`
}

func (r faqRequest) fields() models.FAQFields {
	return models.FAQFields{
		Image:     r.Image,
		ImageName: r.ImageName,
		Question:  r.Question,
		Answer:    r.Answer,
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List FAQs
// @Tags         faqs
// @Produce      json
// @Success      200  {array}   models.FAQ
// @Failure      500  {object}  map[string]string
// @Router       /faqs [get]
func (h *Handler) listFAQs(c *gin.Context) {
	faqs, err := h.services.ListAll(c.Request.Context())
	if err != nil {
		h.respondError(c, "faq_list_failed", err)
		return
	}
	if faqs == nil {
		faqs = []models.FAQ{}
	}
	c.JSON(http.StatusOK, faqs)
}

// @Summary      Get FAQ
// @Tags         faqs
// @Produce      json
// @Param        id   path      string  true  "FAQ id"
// @Success      200  {object}  models.FAQ
// @Failure      404  {object}  map[string]string
// @Router       /faqs/{id} [get]
func (h *Handler) getFAQ(c *gin.Context) {
	id := c.Param("id")
	faq, err := h.services.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, "faq_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, faq)
}

// @Summary      Create FAQ
// @Tags         faqs
// @Accept       json
// @Produce      json
// @Param        body  body      faqRequest  true  "FAQ"
// @Success      201   {object}  models.FAQ
// @Failure      400   {object}  map[string]string
// @Router       /faqs [post]
func (h *Handler) createFAQ(c *gin.Context) {
	var req faqRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	faq, err := h.services.Create(c.Request.Context(), req.fields())
	if err != nil {
		h.respondError(c, "faq_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// @Summary      Replace FAQ
// @Description  Overwrites every field; omitted optional fields become empty.
// @Tags         faqs
// @Accept       json
// @Produce      json
// @Param        id    path      string      true  "FAQ id"
// @Param        body  body      faqRequest  true  "FAQ"
// @Success      200   {object}  models.FAQ
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /faqs/{id} [put]
// @Security     BearerAuth
func (h *Handler) replaceFAQ(c *gin.Context) {
	var req faqRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id := c.Param("id")
	faq, err := h.services.Replace(c.Request.Context(), id, req.fields())
	if err != nil {
		h.respondError(c, "faq_replace_failed", err, "id", id, "user_id", c.GetString(userIDKey))
		return
	}
	c.JSON(http.StatusOK, faq)
}

// @Summary      Delete FAQ
// @Tags         faqs
// @Produce      json
// @Param        id   path      string  true  "FAQ id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /faqs/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteFAQ(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, "faq_delete_failed", err, "id", id, "user_id", c.GetString(userIDKey))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgFAQDeleted})
}
