package model

// Task is a single board item. Every attribute is a pointer so that an
// absent value is bound as NULL and left to the table constraints.
type Task struct {
	ID          *string `gorm:"column:id;primaryKey" json:"id"`
	Title       *string `gorm:"column:title;not null" json:"title"`
	Description *string `gorm:"column:description" json:"description"`
	DocumentID  *string `gorm:"column:document_id" json:"document_id"`
	Priority    *string `gorm:"column:priority;not null" json:"priority"`
	CreatedAt   *string `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   *string `gorm:"column:updated_at;not null" json:"updated_at"`
	ColumnID    *string `gorm:"column:column_id;not null" json:"column_id"`
	Deadline    *string `gorm:"column:deadline" json:"deadline"`
}

func (Task) TableName() string {
	return "tasks"
}

// Text returns a pointer to s.
func Text(s string) *string {
	return &s
}

// Value dereferences p, returning "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
