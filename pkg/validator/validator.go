package validator

import "github.com/go-playground/validator/v10"

// ErrorDetail décrit un champ invalide d'une requête.
type ErrorDetail struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validate = validator.New()

// ValidateStruct applique les tags `validate` d'une struct et retourne le
// détail des champs en échec, ou nil si tout est valide.
func ValidateStruct(data interface{}) []ErrorDetail {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var details []ErrorDetail
	for _, fe := range err.(validator.ValidationErrors) {
		details = append(details, ErrorDetail{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return details
}
