package store

// userColumns is the canonical column order shared by every query that
// scans a full principal row.
const userColumns = `id, username, password_hash, plain_password, role, full_name, email, phone, image_url,
    room_number, floor, date_of_joining, emergency_name, emergency_phone, emergency_relationship,
    has_vehicle, vehicle_type, vehicle_number, vehicle_brand, vehicle_color, is_active, created_by,
    created_at, updated_at`

const (
	createAdmin = `INSERT INTO users (id, username, password_hash, role)
    VALUES ($1, $2, $3, 'admin')
    RETURNING id, username, password_hash, created_at, updated_at;`

	createResident = `INSERT INTO users (
        id, username, password_hash, plain_password, role, full_name, email, phone, image_url,
        room_number, floor, date_of_joining, emergency_name, emergency_phone, emergency_relationship,
        has_vehicle, vehicle_type, vehicle_number, vehicle_brand, vehicle_color, is_active, created_by
    ) VALUES ($1, $2, $3, $4, 'resident', $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listResidents = `SELECT r.id, r.username, r.password_hash, r.plain_password, r.role, r.full_name, r.email,
        r.phone, r.image_url, r.room_number, r.floor, r.date_of_joining, r.emergency_name, r.emergency_phone,
        r.emergency_relationship, r.has_vehicle, r.vehicle_type, r.vehicle_number, r.vehicle_brand,
        r.vehicle_color, r.is_active, r.created_by, r.created_at, r.updated_at,
        COALESCE(c.username, '') AS created_by_username
    FROM users r
    LEFT JOIN users c ON c.id = r.created_by
    WHERE r.role = 'resident'
    ORDER BY r.created_at DESC;`

	deleteResident = `DELETE FROM users
    WHERE id = $1 AND role = 'resident';`

	adminExists = `SELECT EXISTS (SELECT 1 FROM users WHERE role = 'admin');`

	countResidents = `SELECT COUNT(*) FROM users WHERE role = 'resident';`

	countActiveResidents = `SELECT COUNT(*) FROM users WHERE role = 'resident' AND is_active;`

	floorCounts = `SELECT floor, COUNT(*)
    FROM users
    WHERE role = 'resident'
    GROUP BY floor
    ORDER BY floor;`

	recentResidents = `SELECT id, full_name, room_number, floor, created_at
    FROM users
    WHERE role = 'resident'
    ORDER BY created_at DESC
    LIMIT $1;`
)

// notificationColumns is the canonical column order shared by every query
// that scans a full notification row.
const notificationColumns = `id, recipient_id, sender_id, type, title, message, is_urgent, is_read, read_at,
    has_response, response, response_at, response_message, created_at, updated_at`

const (
	createNotification = `INSERT INTO notifications (id, recipient_id, sender_id, type, title, message, is_urgent)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING ` + notificationColumns + `;`

	findNotificationByID = `SELECT ` + notificationColumns + `
    FROM notifications
    WHERE id = $1;`

	listNotificationsByRecipient = `SELECT ` + notificationColumns + `
    FROM notifications
    WHERE recipient_id = $1
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3;`

	listNotificationsBySender = `SELECT ` + notificationColumns + `
    FROM notifications
    WHERE sender_id = $1
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3;`

	countNotificationsByRecipient = `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1;`

	countUnreadNotificationsByRecipient = `SELECT COUNT(*)
    FROM notifications
    WHERE recipient_id = $1 AND NOT is_read;`

	countNotificationsBySender = `SELECT COUNT(*) FROM notifications WHERE sender_id = $1;`

	// read_at survives repeated mark-read calls: COALESCE keeps the first
	// recorded timestamp.
	markNotificationRead = `UPDATE notifications
    SET is_read = TRUE, read_at = COALESCE(read_at, $2), updated_at = NOW()
    WHERE id = $1;`

	// Responding implies reading; read_at is set only when the
	// notification was never read.
	setNotificationResponse = `UPDATE notifications
    SET has_response = TRUE, response = $2, response_at = $3, response_message = $4,
        is_read = TRUE, read_at = COALESCE(read_at, $3), updated_at = NOW()
    WHERE id = $1
    RETURNING ` + notificationColumns + `;`
)
