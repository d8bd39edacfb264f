package constants

// Ad status
const (
	AdStatusHidden  = 0
	AdStatusActive  = 1
	AdStatusSold    = 2
	AdStatusBlocked = 3
)

// Date layout dùng cho cột ads.date
const DateLayout = "2006-01-02"

// Thư mục Cloudinary cho ảnh quảng cáo
const AdUploadFolder = "ads"

// Các thông báo trả về khi chưa có đánh giá / bình luận
const (
	NotRatedMessage     = "Not rated yet for this product"
	NotCommentedMessage = "Not commented yet for this product"
)
