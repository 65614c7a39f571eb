package types

// TruckImage links a truck to a stored blob's derived URL. Rows are only
// created as a side effect of a successful upload.
type TruckImage struct {
	ID       int64  `db:"id" json:"id"`
	TruckID  int64  `db:"truck_id" json:"truck_id"`
	ImageURL string `db:"image_url" json:"image_url"`
}
