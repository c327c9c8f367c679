package models

import "time"

// Overall ApprovalRequest statuses. The status column is a derived summary of
// the response rows and is recomputed on every response; it is cache, not
// source of truth.
const (
	ApprovalStatusPending           = "pending"
	ApprovalStatusPartiallyApproved = "partially_approved"
	ApprovalStatusApproved          = "approved"
	ApprovalStatusRejected          = "rejected"
)

// Per-recipient response values.
const (
	ResponsePending  = "pending"
	ResponseApproved = "approved"
	ResponseRejected = "rejected"
)

// ApprovalRequest is an admin-uploaded file distributed to a set of partner
// recipients for sign-off.
type ApprovalRequest struct {
	ApprovalID  int     `gorm:"primaryKey;column:approval_id" json:"approval_id"`
	Title       string  `gorm:"column:title" json:"title"`
	Description *string `gorm:"column:description" json:"description,omitempty"`
	FileName    string  `gorm:"column:file_name" json:"file_name"`
	FilePath    string  `gorm:"column:file_path" json:"file_path"`
	FileSize    *int64  `gorm:"column:file_size" json:"file_size,omitempty"`
	MimeType    *string `gorm:"column:mime_type" json:"mime_type,omitempty"`
	Status      string  `gorm:"column:status;type:varchar(20);default:'pending'" json:"status"`

	UploadedBy int        `gorm:"column:uploaded_by" json:"uploaded_by"`
	CreateAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt   time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Uploader  User              `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
	Responses []PartnerResponse `gorm:"foreignKey:ApprovalID" json:"responses,omitempty"`
	Comments  []ApprovalComment `gorm:"foreignKey:ApprovalID" json:"comments,omitempty"`
}

// PartnerResponse is one recipient's decision on an approval request.
// Recipients are unique per request.
type PartnerResponse struct {
	ResponseID  int        `gorm:"primaryKey;column:response_id" json:"response_id"`
	ApprovalID  int        `gorm:"column:approval_id;uniqueIndex:idx_approval_partner" json:"approval_id"`
	PartnerID   int        `gorm:"column:partner_id;uniqueIndex:idx_approval_partner" json:"partner_id"`
	Response    string     `gorm:"column:response;type:varchar(20);default:'pending'" json:"response"`
	Comment     *string    `gorm:"column:comment" json:"comment,omitempty"`
	RespondedAt *time.Time `gorm:"column:responded_at" json:"responded_at,omitempty"`

	Partner Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
}

// ApprovalComment is one entry of the free-form discussion thread on a request.
type ApprovalComment struct {
	CommentID  int       `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	ApprovalID int       `gorm:"column:approval_id" json:"approval_id"`
	AuthorID   int       `gorm:"column:author_id" json:"author_id"`
	Text       string    `gorm:"column:text" json:"text"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (ApprovalRequest) TableName() string {
	return "approval_requests"
}

func (PartnerResponse) TableName() string {
	return "partner_responses"
}

func (ApprovalComment) TableName() string {
	return "approval_comments"
}

// IsTerminal reports whether the overall status can no longer change without
// an explicit admin override.
func (a *ApprovalRequest) IsTerminal() bool {
	return a.Status == ApprovalStatusApproved || a.Status == ApprovalStatusRejected
}

// ResponseFor returns the response row for the given partner, if any.
func (a *ApprovalRequest) ResponseFor(partnerID int) *PartnerResponse {
	for i := range a.Responses {
		if a.Responses[i].PartnerID == partnerID {
			return &a.Responses[i]
		}
	}
	return nil
}

type ApprovalRespondRequest struct {
	Response string `json:"response" binding:"required,oneof=approved rejected"`
	Comment  string `json:"comment"`
}

type ApprovalCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
