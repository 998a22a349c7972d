package db

import (
	"database/sql"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo catalog (universities, categories, hosts and listings)
// when the corresponding tables are still empty.
func Seed(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db indisponivel")
	}

	if err := seedUniversities(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedListings(db); err != nil {
		return err
	}
	return nil
}

func tableEmpty(db *sql.DB, table string) (bool, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		return false, err
	}
	return n == 0, nil
}

func seedUniversities(db *sql.DB) error {
	empty, err := tableEmpty(db, "universities")
	if err != nil || !empty {
		return err
	}
	rows := []struct {
		name, acronym, city, neighborhood string
		lat, lng                          float64
	}{
		{"Universidade de São Paulo", "USP", "São Paulo", "Butantã", -23.5595, -46.7313},
		{"Universidade Estadual de Campinas", "Unicamp", "Campinas", "Barão Geraldo", -22.8178, -47.0687},
		{"Universidade Federal de Minas Gerais", "UFMG", "Belo Horizonte", "Pampulha", -19.8665, -43.9607},
		{"Pontifícia Universidade Católica do Rio de Janeiro", "PUC-Rio", "Rio de Janeiro", "Gávea", -22.9777, -43.2331},
		{"Universidade Federal de Santa Catarina", "UFSC", "Florianópolis", "Trindade", -27.5999, -48.5172},
	}
	for _, u := range rows {
		if _, err := db.Exec(`INSERT INTO universities (name, acronym, city, neighborhood, lat, lng) VALUES (?,?,?,?,?,?)`,
			u.name, u.acronym, u.city, u.neighborhood, u.lat, u.lng); err != nil {
			return err
		}
	}
	log.Println("seed: universidades carregadas")
	return nil
}

func seedCategories(db *sql.DB) error {
	empty, err := tableEmpty(db, "categories")
	if err != nil || !empty {
		return err
	}
	rows := []struct{ id, label, description string }{
		{"design", "Design", "Quartos com decoração e design diferenciados."},
		{"prox-campus", "Perto do Campus", "Quartos a uma curta distância da universidade."},
		{"republica", "Repúblicas", "Vagas em repúblicas estudantis animadas."},
		{"kitnet", "Kitnets", "Espaços compactos e independentes."},
		{"alto-padrao", "Alto Padrão", "Quartos com luxo e comodidades premium."},
		{"economico", "Econômicos", "Opções acessíveis para quem quer economizar."},
	}
	for _, c := range rows {
		if _, err := db.Exec(`INSERT INTO categories (id, label, description) VALUES (?,?,?)`,
			c.id, c.label, c.description); err != nil {
			return err
		}
	}
	log.Println("seed: categorias carregadas")
	return nil
}

func seedUsers(db *sql.DB) error {
	empty, err := tableEmpty(db, "users")
	if err != nil || !empty {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("westudy123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	rows := []struct {
		name, email string
		admin       bool
	}{
		{"Admin WeStudy", "admin@westudy.com", true},
		{"Estudante Exemplo", "estudante@exemplo.com", false},
	}
	for _, u := range rows {
		if _, err := db.Exec(`INSERT INTO users (name, email, password_hash, is_admin, status) VALUES (?,?,?,?, 'active')`,
			u.name, u.email, string(hash), u.admin); err != nil {
			return err
		}
	}
	log.Println("seed: usuarios demo carregados (senha padrao westudy123)")
	return nil
}

type seedListing struct {
	title, description            string
	price                         int64
	address                       string
	lat, lng                      float64
	guests, bedrooms, beds, baths int
	rating                        float64
	reviews                       int
	universityAcronym             string
	category, listingType         string
	amenities                     []string
	images                        []string
}

func seedListings(db *sql.DB) error {
	empty, err := tableEmpty(db, "listings")
	if err != nil || !empty {
		return err
	}

	var hostID int64
	if err := db.QueryRow(`SELECT id FROM users WHERE is_admin=1 ORDER BY id LIMIT 1`).Scan(&hostID); err != nil {
		return err
	}

	rows := []seedListing{
		{
			title:       "Quarto Aconchegante Próximo à USP",
			description: "Quarto individual mobiliado, ideal para estudantes da USP. Ambiente tranquilo e seguro, com área de estudos e internet de alta velocidade. Contas inclusas.",
			price:       1200, address: "Rua do Matão, 1010, Butantã, São Paulo - SP",
			lat: -23.5580, lng: -46.7250,
			guests: 1, bedrooms: 1, beds: 1, baths: 1,
			rating: 4.81, reviews: 45,
			universityAcronym: "USP", category: "prox-campus", listingType: "Quarto Individual",
			amenities: []string{"Wi-Fi", "Cozinha Equipada", "Área de Estudos", "Contas Inclusas"},
			images:    []string{"https://picsum.photos/seed/quarto1_img1/800/600", "https://picsum.photos/seed/quarto1_img2/800/600"},
		},
		{
			title:       "Kitnet Completa na Unicamp",
			description: "Kitnet para uma pessoa, totalmente equipada, a poucos minutos da Unicamp. Inclui cozinha compacta, banheiro privativo e Wi-Fi.",
			price:       950, address: "Av. Albino J. B. de Oliveira, 1500, Barão Geraldo, Campinas - SP",
			lat: -22.8145, lng: -47.0700,
			guests: 1, bedrooms: 1, beds: 1, baths: 1,
			rating: 4.53, reviews: 30,
			universityAcronym: "Unicamp", category: "kitnet", listingType: "Kitnet",
			amenities: []string{"Wi-Fi", "TV", "Cozinha Equipada", "Banheiro Privativo"},
			images:    []string{"https://picsum.photos/seed/quarto2_img1/800/600", "https://picsum.photos/seed/quarto2_img2/800/600"},
		},
		{
			title:       "Vaga em República perto da UFMG",
			description: "Vaga em quarto compartilhado em república estudantil bem localizada na Pampulha, próxima à UFMG.",
			price:       700, address: "Rua Prof. Baeta Viana, 200, Pampulha, Belo Horizonte - MG",
			lat: -19.8690, lng: -43.9630,
			guests: 1, bedrooms: 1, beds: 1, baths: 2,
			rating: 4.20, reviews: 22,
			universityAcronym: "UFMG", category: "republica", listingType: "Vaga em República",
			amenities: []string{"Wi-Fi", "Lavanderia", "Área Comum"},
			images:    []string{"https://picsum.photos/seed/quarto3_img1/800/600"},
		},
		{
			title:       "Studio Design na Gávea (PUC-Rio)",
			description: "Studio elegante e funcional, perfeito para estudantes da PUC-Rio. Design moderno, ar condicionado e cozinha americana.",
			price:       1500, address: "Rua Marquês de São Vicente, 225, Gávea, Rio de Janeiro - RJ",
			lat: -22.9750, lng: -43.2300,
			guests: 1, bedrooms: 0, beds: 1, baths: 1,
			rating: 4.92, reviews: 55,
			universityAcronym: "PUC-Rio", category: "design", listingType: "Studio",
			amenities: []string{"Wi-Fi", "TV", "Cozinha Equipada", "Ar Condicionado", "Banheiro Privativo"},
			images:    []string{"https://picsum.photos/seed/quarto4_img1/800/600", "https://picsum.photos/seed/quarto4_img2/800/600"},
		},
		{
			title:       "Quarto Econômico e Charmoso (UFSC)",
			description: "Quarto espaçoso em apartamento compartilhado, com varanda privativa e vista para área verde, no coração da Trindade.",
			price:       680, address: "Rua Lauro Linhares, 1000, Trindade, Florianópolis - SC",
			lat: -27.6015, lng: -48.5190,
			guests: 1, bedrooms: 1, beds: 1, baths: 1,
			rating: 4.35, reviews: 18,
			universityAcronym: "UFSC", category: "economico", listingType: "Quarto em Apartamento",
			amenities: []string{"Wi-Fi", "Área de Estudos", "Área Comum", "Academia"},
			images:    []string{"https://picsum.photos/seed/quarto5_img1/800/600"},
		},
	}

	for _, l := range rows {
		var uniID int64
		if err := db.QueryRow(`SELECT id FROM universities WHERE acronym=?`, l.universityAcronym).Scan(&uniID); err != nil {
			return fmt.Errorf("universidade %s: %w", l.universityAcronym, err)
		}
		res, err := db.Exec(`
			INSERT INTO listings
				(title, description, price_per_month, address, lat, lng,
				 guests, bedrooms, beds, baths, rating, review_count,
				 host_id, university_id, category_id, is_available, approval_status, type,
				 cancellation_policy, house_rules, safety_and_property)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,1,'approved',?,?,?,?)`,
			l.title, l.description, l.price, l.address, l.lat, l.lng,
			l.guests, l.bedrooms, l.beds, l.baths, l.rating, l.reviews,
			hostID, uniID, NullIfEmpty(l.category), l.listingType,
			defaultCancellationPolicy, defaultHouseRules, defaultSafetyAndProperty,
		)
		if err != nil {
			return err
		}
		id, _ := res.LastInsertId()
		for i, url := range l.images {
			if _, err := db.Exec(`INSERT INTO listing_images (listing_id, url, alt, position) VALUES (?,?,?,?)`,
				id, url, l.title, i); err != nil {
				return err
			}
		}
		for _, a := range l.amenities {
			if _, err := db.Exec(`INSERT INTO listing_amenities (listing_id, amenity) VALUES (?,?)`, id, a); err != nil {
				return err
			}
		}
	}
	log.Printf("seed: %d quartos carregados", len(rows))
	return nil
}

const (
	defaultCancellationPolicy = "Cancelamento flexível: Reembolso total até 5 dias antes do check-in. Após esse período, uma taxa pode ser aplicada."
	defaultHouseRules         = "Não são permitidas festas ou eventos.\nHorário de silêncio após as 22:00.\nNão fumar dentro do quarto ou áreas comuns."
	defaultSafetyAndProperty  = "Detector de fumaça instalado.\nExtintor de incêndio disponível.\nCâmeras de segurança nas áreas comuns externas."
)
