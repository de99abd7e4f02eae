package models

// Food visibility. Public foods are readable by everyone; private foods
// only by their owner.
const (
	PublicAccess  = "PUBLIC_ACCESS"
	PrivateAccess = "PRIVATE_ACCESS"
)

type Food struct {
	ID          string  `bson:"_id" json:"id"`
	UserID      string  `bson:"userId" json:"userId"`
	Name        string  `bson:"name" json:"name"`
	Calories    float64 `bson:"calories" json:"calories"`
	Protein     float64 `bson:"protein" json:"protein"`
	Carbs       float64 `bson:"carbs" json:"carbs"`
	Fat         float64 `bson:"fat" json:"fat"`
	ServingSize float64 `bson:"servingSize" json:"servingSize"`
	ServingUnit string  `bson:"servingUnit" json:"servingUnit"`
	Access      string  `bson:"access" json:"access"`
	Description string  `bson:"description" json:"description"`
	ImageURL    string  `bson:"imageUrl" json:"imageUrl"`
}

// NormalizeAccess maps anything that is not explicitly public to
// private, so a malformed access value never widens visibility.
func NormalizeAccess(access string) string {
	if access == PublicAccess {
		return PublicAccess
	}
	return PrivateAccess
}
