package schema

// ContentBlogTable represents the 'content.blog' table
type ContentBlogTable struct {
	Table           string
	ID              string
	Title           string
	TitleKey        string
	Author          string
	PublicationDate string
	Body            string
	CreatedAt       string
	UpdatedAt       string
}

// ContentBlog is the schema definition for content.blog
var ContentBlog = ContentBlogTable{
	Table:           "content.blog",
	ID:              "id",
	Title:           "title",
	TitleKey:        "titlekey",
	Author:          "author",
	PublicationDate: "publicationdate",
	Body:            "body",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
}

// Columns returns the columns read back into a Blog, in scan order
func (t ContentBlogTable) Columns() []string {
	return []string{t.ID, t.Title, t.Author, t.PublicationDate, t.Body}
}
