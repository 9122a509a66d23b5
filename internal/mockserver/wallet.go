package mockserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bingo-miniapp-client/internal/models"
)

func (s *Server) handleBalance(c *gin.Context) {
	user, ok := s.store.user(userID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
		return
	}
	c.JSON(http.StatusOK, models.BalanceResponse{
		Balance:      user.Balance,
		BonusBalance: user.BonusBalance,
		Total:        user.Balance + user.BonusBalance,
	})
}

func (s *Server) handleTransactions(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	c.JSON(http.StatusOK, s.store.userTransactions(userID(c), limit))
}

func (s *Server) handleDeposit(c *gin.Context) {
	var req models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "method and a positive amount are required"})
		return
	}

	tx := models.Transaction{
		ID:          models.GenerateTransactionID(),
		Type:        models.TransactionTypeDeposit,
		Amount:      req.Amount,
		Method:      req.Method,
		Status:      "pending",
		Description: fmt.Sprintf("Deposit via %s", req.Method),
		CreatedAt:   time.Now().UTC(),
	}
	s.store.addTransaction(userID(c), tx)

	// The practice server settles instantly; real rails are pending
	// until the provider confirms.
	if err := s.store.adjustBalance(userID(c), req.Amount); err == nil {
		tx.Status = "completed"
	}
	c.JSON(http.StatusOK, tx)
}

func (s *Server) handleWithdraw(c *gin.Context) {
	var req models.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "method and a positive amount are required"})
		return
	}

	if err := s.store.adjustBalance(userID(c), -req.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "insufficient balance"})
		return
	}
	tx := models.Transaction{
		ID:          models.GenerateTransactionID(),
		Type:        models.TransactionTypeWithdraw,
		Amount:      req.Amount,
		Method:      req.Method,
		Status:      "pending",
		Description: fmt.Sprintf("Withdrawal via %s", req.Method),
		CreatedAt:   time.Now().UTC(),
	}
	s.store.addTransaction(userID(c), tx)
	c.JSON(http.StatusOK, tx)
}

func (s *Server) handleTransfer(c *gin.Context) {
	var req models.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "recipient_id and a positive amount are required"})
		return
	}
	if _, ok := s.store.user(req.RecipientID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "recipient not found"})
		return
	}
	if err := s.store.adjustBalance(userID(c), -req.Amount); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "insufficient balance"})
		return
	}
	s.store.adjustBalance(req.RecipientID, req.Amount)

	tx := models.Transaction{
		ID:          models.GenerateTransactionID(),
		Type:        models.TransactionTypeTransfer,
		Amount:      req.Amount,
		Status:      "completed",
		Description: fmt.Sprintf("Transfer to user %d", req.RecipientID),
		CreatedAt:   time.Now().UTC(),
	}
	s.store.addTransaction(userID(c), tx)
	c.JSON(http.StatusOK, tx)
}

func (s *Server) handleProfile(c *gin.Context) {
	user, ok := s.store.user(userID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleUpdateLanguage(c *gin.Context) {
	language := c.Query("language")
	if language == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "language is required"})
		return
	}
	if err := s.store.setLanguage(userID(c), language); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Language updated"})
}
