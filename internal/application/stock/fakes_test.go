package stock_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Arnaud70/essikokoe/internal/domain"
	"github.com/Arnaud70/essikokoe/internal/domain/entity"
	"github.com/Arnaud70/essikokoe/internal/domain/repository"
)

// memStore état en mémoire partagé par les fakes: produits, grand livre et
// notifications. memTxRunner sérialise les accès avec un mutex, comme le
// verrou de ligne produit le fait en base.
type memStore struct {
	mu            sync.Mutex
	produits      map[string]*entity.Produit
	mouvements    []*entity.MouvementStock
	notifications []*entity.Notification
	seq           int
}

func newMemStore(produits ...*entity.Produit) *memStore {
	s := &memStore{produits: make(map[string]*entity.Produit)}
	for _, p := range produits {
		cp := *p
		s.produits[p.CodeProduit] = &cp
	}
	return s
}

// memTxRunner exécute fn sous mutex avec des repos liés au même état.
// Reproduit la garantie de la vraie transaction: la séquence
// lecture-vérification-ajout d'un appel n'est jamais entrelacée avec une autre.
type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	produitRepo repository.ProduitRepository,
	mouvementRepo repository.MouvementRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(
		&memProduitRepo{store: r.store},
		&memMouvementRepo{store: r.store},
		&memNotificationRepo{store: r.store},
	)
}

// ── Repos en mémoire ─────────────────────────────────────────────────────────

type memProduitRepo struct{ store *memStore }

var _ repository.ProduitRepository = (*memProduitRepo)(nil)

func (r *memProduitRepo) Create(p *entity.Produit) error {
	if _, ok := r.store.produits[p.CodeProduit]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.store.produits[p.CodeProduit] = &cp
	return nil
}

func (r *memProduitRepo) GetByCode(code string) (*entity.Produit, error) {
	p, ok := r.store.produits[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProduitRepo) GetByCodeForUpdate(code string) (*entity.Produit, error) {
	return r.GetByCode(code)
}

func (r *memProduitRepo) List() ([]*entity.Produit, error) {
	codes := make([]string, 0, len(r.store.produits))
	for c := range r.store.produits {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	out := make([]*entity.Produit, 0, len(codes))
	for _, c := range codes {
		cp := *r.store.produits[c]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProduitRepo) Search(query string) ([]*entity.Produit, error) {
	all, _ := r.List()
	q := strings.ToLower(query)
	var out []*entity.Produit
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.CodeProduit), q) ||
			strings.Contains(strings.ToLower(p.NomProduit), q) ||
			strings.Contains(strings.ToLower(p.Fournisseur), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProduitRepo) ListByFormat(format string) ([]*entity.Produit, error) {
	all, _ := r.List()
	var out []*entity.Produit
	for _, p := range all {
		if p.Format == format {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NomProduit < out[j].NomProduit })
	return out, nil
}

func (r *memProduitRepo) Update(p *entity.Produit) error {
	if _, ok := r.store.produits[p.CodeProduit]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.store.produits[p.CodeProduit] = &cp
	return nil
}

func (r *memProduitRepo) Delete(code string) error {
	if _, ok := r.store.produits[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.produits, code)
	return nil
}

type memMouvementRepo struct{ store *memStore }

var _ repository.MouvementRepository = (*memMouvementRepo)(nil)

func (r *memMouvementRepo) Create(m *entity.MouvementStock) error {
	r.store.seq++
	cp := *m
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("mvt-%d", r.store.seq)
	}
	r.store.mouvements = append(r.store.mouvements, &cp)
	return nil
}

func (r *memMouvementRepo) ListByProduit(code string) ([]*entity.MouvementStock, error) {
	var out []*entity.MouvementStock
	for _, m := range r.store.mouvements {
		if m.CodeProduit == code {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMouvementRepo) SommeParProduit(code string) (repository.SommeMouvements, error) {
	var s repository.SommeMouvements
	for _, m := range r.store.mouvements {
		if m.CodeProduit != code {
			continue
		}
		switch m.Type {
		case entity.MouvementEntree:
			s.Entrees += m.Quantite
		case entity.MouvementSortie:
			s.Sorties += m.Quantite
		}
	}
	return s, nil
}

func (r *memMouvementRepo) SommesTous() (map[string]repository.SommeMouvements, error) {
	out := make(map[string]repository.SommeMouvements)
	for _, m := range r.store.mouvements {
		s := out[m.CodeProduit]
		switch m.Type {
		case entity.MouvementEntree:
			s.Entrees += m.Quantite
		case entity.MouvementSortie:
			s.Sorties += m.Quantite
		}
		out[m.CodeProduit] = s
	}
	return out, nil
}

func (r *memMouvementRepo) CountByProduit(code string) (int, error) {
	n := 0
	for _, m := range r.store.mouvements {
		if m.CodeProduit == code {
			n++
		}
	}
	return n, nil
}

type memNotificationRepo struct{ store *memStore }

var _ repository.NotificationRepository = (*memNotificationRepo)(nil)

func (r *memNotificationRepo) Create(n *entity.Notification) error {
	r.store.seq++
	cp := *n
	if cp.ID == "" {
		cp.ID = fmt.Sprintf("notif-%d", r.store.seq)
	}
	r.store.notifications = append(r.store.notifications, &cp)
	return nil
}

func (r *memNotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for i := len(r.store.notifications) - 1; i >= 0; i-- {
		cp := *r.store.notifications[i]
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memNotificationRepo) ListByProduit(code string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for i := len(r.store.notifications) - 1; i >= 0; i-- {
		if r.store.notifications[i].CodeProduit == code {
			cp := *r.store.notifications[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Accès direct pour les assertions (hors transaction).
func (s *memStore) notificationsPour(code string) []*entity.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Notification
	for _, n := range s.notifications {
		if n.CodeProduit == code {
			out = append(out, n)
		}
	}
	return out
}

func (s *memStore) mouvementsPour(code string) []*entity.MouvementStock {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.MouvementStock
	for _, m := range s.mouvements {
		if m.CodeProduit == code {
			out = append(out, m)
		}
	}
	return out
}
