package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates all tables when absent. Statements are idempotent so the
// server can start against an empty database.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db indisponivel")
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("ddl falhou: %w", err)
		}
	}
	return nil
}

var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	avatar_url VARCHAR(512) NOT NULL DEFAULT '',
	is_admin TINYINT(1) NOT NULL DEFAULT 0,
	status VARCHAR(20) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS universities (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	acronym VARCHAR(50) NOT NULL,
	city VARCHAR(120) NOT NULL,
	neighborhood VARCHAR(120) NOT NULL DEFAULT '',
	lat DOUBLE NOT NULL DEFAULT 0,
	lng DOUBLE NOT NULL DEFAULT 0,
	UNIQUE KEY uniq_universities_acronym (acronym)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS categories (
	id VARCHAR(50) PRIMARY KEY,
	label VARCHAR(120) NOT NULL,
	description VARCHAR(255) NOT NULL DEFAULT ''
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS listings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	description TEXT,
	price_per_month BIGINT NOT NULL,
	address VARCHAR(512) NOT NULL DEFAULT '',
	lat DOUBLE NOT NULL DEFAULT 0,
	lng DOUBLE NOT NULL DEFAULT 0,
	guests INT NOT NULL DEFAULT 1,
	bedrooms INT NOT NULL DEFAULT 1,
	beds INT NOT NULL DEFAULT 1,
	baths INT NOT NULL DEFAULT 1,
	rating DOUBLE NOT NULL DEFAULT 0,
	review_count INT NOT NULL DEFAULT 0,
	host_id BIGINT NOT NULL,
	university_id BIGINT NOT NULL,
	category_id VARCHAR(50) NULL,
	is_available TINYINT(1) NOT NULL DEFAULT 1,
	approval_status VARCHAR(20) NOT NULL DEFAULT 'approved',
	type VARCHAR(100) NOT NULL DEFAULT '',
	cancellation_policy TEXT,
	house_rules TEXT,
	safety_and_property TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_listings_category (category_id),
	KEY idx_listings_university (university_id),
	KEY idx_listings_approval (approval_status),
	CONSTRAINT fk_listings_host FOREIGN KEY (host_id) REFERENCES users(id),
	CONSTRAINT fk_listings_university FOREIGN KEY (university_id) REFERENCES universities(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS listing_images (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	listing_id BIGINT NOT NULL,
	url VARCHAR(512) NOT NULL,
	alt VARCHAR(255) NOT NULL DEFAULT '',
	position INT NOT NULL DEFAULT 0,
	KEY idx_listing_images (listing_id, position),
	CONSTRAINT fk_images_listing FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS listing_amenities (
	listing_id BIGINT NOT NULL,
	amenity VARCHAR(100) NOT NULL,
	PRIMARY KEY (listing_id, amenity),
	CONSTRAINT fk_amenities_listing FOREIGN KEY (listing_id) REFERENCES listings(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	listing_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	check_in DATE NOT NULL,
	check_out DATE NOT NULL,
	total_price BIGINT NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'Confirmada',
	guests INT NOT NULL DEFAULT 1,
	booked_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_bookings_user (user_id),
	KEY idx_bookings_listing (listing_id),
	CONSTRAINT fk_bookings_listing FOREIGN KEY (listing_id) REFERENCES listings(id),
	CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS conversations (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	listing_id BIGINT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS conversation_participants (
	conversation_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	last_read_at TIMESTAMP NULL DEFAULT NULL,
	PRIMARY KEY (conversation_id, user_id),
	KEY idx_participants_user (user_id),
	CONSTRAINT fk_participants_conversation FOREIGN KEY (conversation_id) REFERENCES conversations(id) ON DELETE CASCADE,
	CONSTRAINT fk_participants_user FOREIGN KEY (user_id) REFERENCES users(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS messages (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	conversation_id BIGINT NOT NULL,
	sender_id BIGINT NOT NULL,
	content TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_messages_conversation (conversation_id, created_at),
	CONSTRAINT fk_messages_conversation FOREIGN KEY (conversation_id) REFERENCES conversations(id) ON DELETE CASCADE,
	CONSTRAINT fk_messages_sender FOREIGN KEY (sender_id) REFERENCES users(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,

	`CREATE TABLE IF NOT EXISTS password_resets (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	token VARCHAR(128) NOT NULL,
	expires_at TIMESTAMP NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_password_resets_user (user_id),
	CONSTRAINT fk_password_resets_user FOREIGN KEY (user_id) REFERENCES users(id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;`,
}
