package models

// Intake is a single food-consumption event, scoped to exactly one
// daily log. Quantity multiplies the food's per-serving nutrition.
type Intake struct {
	ID       string  `bson:"_id" json:"id"`
	UserID   string  `bson:"userId" json:"userId"`
	DayID    string  `bson:"dayId" json:"dayId"`
	FoodID   string  `bson:"foodId" json:"foodId"`
	Quantity float64 `bson:"quantity" json:"quantity"`
}

// IntakeEntry is one row of a day's intake report: the intake joined
// against its food, with nutrition scaled by quantity.
type IntakeEntry struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	FoodID      string  `json:"foodId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	ImageURL    string  `json:"imageUrl"`
}
