package models

// CreateCakeRequest 定義建立蛋糕請求的結構，ID 由資料庫分配
type CreateCakeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateCakeRequest 定義更新蛋糕請求的結構，目標 ID 來自路徑參數
type UpdateCakeRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CakeResponse 是對外的蛋糕表示
type CakeResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CakesResponse 包裝蛋糕列表，依標題升序排列
type CakesResponse struct {
	Cakes []CakeResponse `json:"cakes"`
}
