package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

const profileColumns = `
	api_token, email, COALESCE(site_id, ''),
	high_price, low_price, renewables,
	high_price_enabled, low_price_enabled, renewables_enabled,
	quiet_hours, quiet_hours_enabled,
	email_notifications, timezone,
	last_high_alert, last_low_alert, last_renewables_alert,
	created_at, updated_at`

// Profile queries.
const (
	queryUpsertProfile = `
		INSERT INTO user_settings (
			api_token, email, site_id,
			high_price, low_price, renewables,
			high_price_enabled, low_price_enabled, renewables_enabled,
			quiet_hours, quiet_hours_enabled,
			email_notifications, timezone,
			created_at, updated_at
		) VALUES (
			@api_token, @email, @site_id,
			@high_price, @low_price, @renewables,
			@high_price_enabled, @low_price_enabled, @renewables_enabled,
			@quiet_hours, @quiet_hours_enabled,
			@email_notifications, @timezone,
			now(), now()
		)
		ON CONFLICT (api_token) DO UPDATE SET
			email = EXCLUDED.email,
			site_id = EXCLUDED.site_id,
			high_price = EXCLUDED.high_price,
			low_price = EXCLUDED.low_price,
			renewables = EXCLUDED.renewables,
			high_price_enabled = EXCLUDED.high_price_enabled,
			low_price_enabled = EXCLUDED.low_price_enabled,
			renewables_enabled = EXCLUDED.renewables_enabled,
			quiet_hours = EXCLUDED.quiet_hours,
			quiet_hours_enabled = EXCLUDED.quiet_hours_enabled,
			email_notifications = EXCLUDED.email_notifications,
			timezone = EXCLUDED.timezone,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryGetProfileByToken = `
		SELECT ` + profileColumns + `
		FROM user_settings
		WHERE api_token = $1`

	queryGetProfileByEmail = `
		SELECT ` + profileColumns + `
		FROM user_settings
		WHERE email = $1`

	queryListSubscribed = `
		SELECT ` + profileColumns + `
		FROM user_settings
		WHERE email_notifications
		ORDER BY created_at`

	querySetSiteID = `
		UPDATE user_settings SET
			site_id = $2,
			updated_at = now()
		WHERE api_token = $1`
)

// Last-alert timestamp updates, one column per alert kind. The
// GREATEST guard keeps the stored timestamp monotonically
// non-decreasing even if cycles land out of order.
const (
	queryUpdateLastHighAlert = `
		UPDATE user_settings SET
			last_high_alert = GREATEST(COALESCE(last_high_alert, $2), $2),
			updated_at = now()
		WHERE api_token = $1`

	queryUpdateLastLowAlert = `
		UPDATE user_settings SET
			last_low_alert = GREATEST(COALESCE(last_low_alert, $2), $2),
			updated_at = now()
		WHERE api_token = $1`

	queryUpdateLastRenewablesAlert = `
		UPDATE user_settings SET
			last_renewables_alert = GREATEST(COALESCE(last_renewables_alert, $2), $2),
			updated_at = now()
		WHERE api_token = $1`
)
