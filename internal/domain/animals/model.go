package animals

const (
	DefaultAge                 = 0
	DefaultGender              = "Unknown"
	DefaultSpecialRequirements = ""
)

// Animal es un registro de la colección "animals". Species es requerido y único.
type Animal struct {
	ID                  int    `json:"id"`
	Species             string `json:"species"`
	Age                 int    `json:"age"`
	Gender              string `json:"gender"`
	SpecialRequirements string `json:"special_requirements"`
}
