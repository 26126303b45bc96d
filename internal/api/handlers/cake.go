package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cake_api/internal/models"
	"cake_api/internal/service"
)

// CakeService 是 CakeHandler 依賴的業務操作
type CakeService interface {
	GetCakes() (*models.CakesResponse, error)
	GetCakeByID(id uint) (*models.CakeResponse, error)
	CreateCake(req models.CreateCakeRequest) (*models.CakeResponse, error)
	UpdateCake(id uint, req models.UpdateCakeRequest) (*models.CakeResponse, error)
	DeleteCake(id uint) error
}

// CakeHandler 處理與蛋糕相關的請求
type CakeHandler struct {
	cakeService CakeService
}

// NewCakeHandler 創建一個新的 CakeHandler 實例
func NewCakeHandler(cakeService CakeService) *CakeHandler {
	return &CakeHandler{cakeService: cakeService}
}

// ListCakes 處理獲取蛋糕列表的請求
func (h *CakeHandler) ListCakes(c *gin.Context) {
	cakes, err := h.cakeService.GetCakes()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cakes)
}

// GetCake 處理獲取單一蛋糕的請求
func (h *CakeHandler) GetCake(c *gin.Context) {
	id, ok := parseCakeID(c)
	if !ok {
		return
	}

	cake, err := h.cakeService.GetCakeByID(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cake)
}

// CreateCake 處理創建新蛋糕的請求
func (h *CakeHandler) CreateCake(c *gin.Context) {
	var input models.CreateCakeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cake, err := h.cakeService.CreateCake(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cake)
}

// UpdateCake 處理更新蛋糕的請求，成功時不回傳內容
func (h *CakeHandler) UpdateCake(c *gin.Context) {
	id, ok := parseCakeID(c)
	if !ok {
		return
	}

	var input models.UpdateCakeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.cakeService.UpdateCake(id, input); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCake 處理刪除蛋糕的請求
func (h *CakeHandler) DeleteCake(c *gin.Context) {
	id, ok := parseCakeID(c)
	if !ok {
		return
	}

	if err := h.cakeService.DeleteCake(id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseCakeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "無效的蛋糕 ID"})
		return 0, false
	}
	return uint(id), true
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCakeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "蛋糕不存在"})
		return
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "伺服器內部錯誤"})
}
