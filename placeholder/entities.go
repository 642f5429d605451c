package placeholder

// Post is a blog post belonging to a user.
type Post struct {
	UserID int    `json:"userId" validate:"required"`
	ID     int    `json:"id"`
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body" validate:"required"`
}

// Comment is a reader comment attached to a post.
type Comment struct {
	PostID int    `json:"postId" validate:"required"`
	ID     int    `json:"id"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Body   string `json:"body" validate:"required"`
}

// Album is a photo album belonging to a user.
type Album struct {
	UserID int    `json:"userId" validate:"required"`
	ID     int    `json:"id"`
	Title  string `json:"title" validate:"required"`
}

// Photo is a single photo inside an album.
type Photo struct {
	AlbumID      int    `json:"albumId" validate:"required"`
	ID           int    `json:"id"`
	Title        string `json:"title" validate:"required"`
	URL          string `json:"url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
}

// Todo is a task on a user's todo list.
type Todo struct {
	UserID    int    `json:"userId" validate:"required"`
	ID        int    `json:"id"`
	Title     string `json:"title" validate:"required"`
	Completed bool   `json:"completed"`
}

// Geo is a geographic coordinate pair.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Address is a user's postal address.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Company is the company a user works for.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// User is a registered account.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Address  Address `json:"address"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Company  Company `json:"company"`
}
