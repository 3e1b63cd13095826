package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name, wallet_address, role)
    VALUES ($1, $2, $3, NULLIF($4, ''), $5)
    RETURNING user_id, login, password_hash, name, COALESCE(wallet_address, ''), role, reputation_score, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, COALESCE(wallet_address, ''), role, reputation_score, created_at
    FROM users
    WHERE login = $1;`

	listUsers = `SELECT user_id, login, password_hash, name, COALESCE(wallet_address, ''), role, reputation_score, created_at
    FROM users
    ORDER BY user_id;`

	createDataset = `INSERT INTO datasets (user_id, title, description, category, data_format, ipfs_cid)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, created_at;`

	createEncryptedDataset = `INSERT INTO encrypted_datasets (name, ipfs_cid, encryption_key, owner_address, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, name, ipfs_cid, encryption_key, token_id, owner_address, user_id, created_at;`

	findEncryptedByTokenID = `SELECT id, name, ipfs_cid, encryption_key, token_id, owner_address, user_id, created_at
    FROM encrypted_datasets
    WHERE token_id = $1;`

	findEncryptedByCID = `SELECT id, name, ipfs_cid, encryption_key, token_id, owner_address, user_id, created_at
    FROM encrypted_datasets
    WHERE ipfs_cid = $1;`

	attachTokenID = `UPDATE encrypted_datasets
    SET token_id = $2
    WHERE ipfs_cid = $1;`

	listUnfinalized = `SELECT id, name, ipfs_cid, encryption_key, token_id, owner_address, user_id, created_at
    FROM encrypted_datasets
    WHERE token_id IS NULL
    ORDER BY created_at;`
)

// buildListDatasetsQuery assembles the catalog listing query with optional
// category and owner filters.
func buildListDatasetsQuery(filter DatasetFilter) (string, []any, error) {
	builder := sq.Select(
		"d.id", "d.user_id", "u.login", "d.title", "d.description",
		"d.category", "d.data_format", "d.ipfs_cid", "d.created_at",
	).
		From("datasets d").
		Join("users u ON u.user_id = d.user_id").
		OrderBy("d.id").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"d.category": filter.Category})
	}
	if filter.OwnerLogin != "" {
		builder = builder.Where(sq.Eq{"u.login": filter.OwnerLogin})
	}

	return builder.ToSql()
}
