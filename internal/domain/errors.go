package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource non trouvée")
	ErrUserNotFound       = errors.New("utilisateur non trouvé")
	ErrEmailAlreadyExists = errors.New("l'email est déjà enregistré")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrDuplicate          = errors.New("ressource dupliquée")
	ErrFormatMismatch     = errors.New("le format fourni ne correspond pas au produit")
	ErrInsufficientStock  = errors.New("stock insuffisant")
	ErrProduitReference   = errors.New("le produit est référencé par des mouvements")
	ErrConflict           = errors.New("conflit d'écriture concurrent")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
)
