package entity

type Review struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	MovieID    int64  `db:"movie_id"`
	ReviewText string `db:"review_text"`
}

type Rating struct {
	ID      int64   `db:"id"`
	UserID  int64   `db:"user_id"`
	MovieID int64   `db:"movie_id"`
	Rating  float64 `db:"rating"`
}
