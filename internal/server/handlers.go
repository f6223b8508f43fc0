package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iwantdrugsxd/evea-sub002/internal/calculator"
	"github.com/iwantdrugsxd/evea-sub002/internal/models"
	"github.com/iwantdrugsxd/evea-sub002/internal/planner"
)

// session resolves the session named in the path, hydrating it from
// storage if this process has not seen it yet.
func (s *Server) session(c *gin.Context) *planner.Session {
	_, sess := s.planner.OpenSession(c.Request.Context(), c.Param("sessionID"))
	return sess
}

func (s *Server) openSession(c *gin.Context) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	// Body is optional; ignore decode errors for an empty body.
	_ = c.ShouldBindJSON(&req)

	id, sess := s.planner.OpenSession(c.Request.Context(), req.SessionID)
	c.JSON(http.StatusOK, gin.H{"sessionId": id, "state": sess.State()})
}

func (s *Server) sessionState(c *gin.Context) {
	c.JSON(http.StatusOK, s.session(c).State())
}

func (s *Server) nextStep(c *gin.Context) {
	sess := s.session(c)
	sess.NextStep()
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) previousStep(c *gin.Context) {
	sess := s.session(c)
	sess.PreviousStep()
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) goToStep(c *gin.Context) {
	var req struct {
		Step int `json:"step"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := s.session(c)
	sess.GoToStep(req.Step)
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) completeStep(c *gin.Context) {
	var req struct {
		StepID string `json:"stepId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := s.session(c)
	sess.CompleteStep(req.StepID)
	c.JSON(http.StatusOK, gin.H{
		"state":      sess.State(),
		"canProceed": sess.CanProceed(),
	})
}

func (s *Server) setEventType(c *gin.Context) {
	var req struct {
		EventTypeID string `json:"eventTypeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	et := models.EventTypeByID(req.EventTypeID)
	if et == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown event type"})
		return
	}
	sess := s.session(c)
	sess.SetEventType(*et)
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) updateEventDetails(c *gin.Context) {
	var patch models.EventDetailsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := s.session(c)
	sess.UpdateEventData(patch)
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) validateEventDetails(c *gin.Context) {
	sess := s.session(c)
	errs := planner.ValidateEventDetails(sess.EventData())
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

func (s *Server) selectCategory(c *gin.Context) {
	var cat models.ServiceCategory
	if err := c.ShouldBindJSON(&cat); err != nil || cat.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category id is required"})
		return
	}
	sess := s.session(c)
	sess.SelectCategory(cat)
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) deselectCategory(c *gin.Context) {
	sess := s.session(c)
	sess.DeselectCategory(c.Param("categoryID"))
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) getPackage(c *gin.Context) {
	pkg := s.session(c).Package()
	c.JSON(http.StatusOK, gin.H{
		"package": pkg,
		"formatted": gin.H{
			"subtotal":         calculator.FormatPrice(pkg.Subtotal),
			"platformFee":      calculator.FormatPrice(pkg.PlatformFee),
			"taxAmount":        calculator.FormatPrice(pkg.TaxAmount),
			"totalAmount":      calculator.FormatPrice(pkg.TotalAmount),
			"estimatedSavings": calculator.FormatPrice(pkg.EstimatedSavings),
		},
	})
}

func (s *Server) addPackageItem(c *gin.Context) {
	var req struct {
		CardID   string `json:"cardId" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := s.session(c)
	if err := s.planner.AddCardToPackage(c.Request.Context(), sess, req.CardID, req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) updatePackageItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := s.session(c)
	sess.UpdateItemQuantity(c.Param("itemID"), req.Quantity)
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) removePackageItem(c *gin.Context) {
	sess := s.session(c)
	sess.RemoveFromPackage(c.Param("itemID"))
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) recommendations(c *gin.Context) {
	sess := s.session(c)
	if err := s.planner.RefreshRecommendations(c.Request.Context(), sess); err != nil {
		// The session error field carries the user-facing message; the
		// wizard keeps running.
		c.JSON(http.StatusBadGateway, gin.H{"error": sess.State().Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": sess.Recommendations()})
}

func (s *Server) setFilters(c *gin.Context) {
	var patch models.FiltersPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := s.session(c)
	sess.SetFilters(patch)
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) resetFilters(c *gin.Context) {
	sess := s.session(c)
	sess.ResetFilters()
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) resetSession(c *gin.Context) {
	sess := s.session(c)
	sess.ResetEventPlanning()
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) clearEventData(c *gin.Context) {
	sess := s.session(c)
	sess.ClearEventData()
	c.JSON(http.StatusOK, sess.State())
}

func (s *Server) listEventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"eventTypes": models.EventTypes()})
}

func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.store.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

func (s *Server) listCards(c *gin.Context) {
	cards, err := s.store.ListVendorCards(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load vendor cards"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

func (s *Server) listReviews(c *gin.Context) {
	reviews, err := s.store.ListReviews(c.Request.Context(), c.Param("cardID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}
