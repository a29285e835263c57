package store

// Blob store key layout. Records live under "<kind>:<id>", index lists under
// "<owner kind>_<kinds>:<owner id>".
const (
	userPrefix         = "user:"
	userEmailPrefix    = "user_email:"
	sitePrefix         = "site:"
	userSitesPrefix    = "user_sites:"
	teamSitesPrefix    = "team_sites:"
	goalPrefix         = "goal:"
	siteGoalsPrefix    = "site_goals:"
	webhookPrefix      = "webhook:"
	siteWebhooksPrefix = "site_webhooks:"
	alertPrefix        = "alert:"
	siteAlertsPrefix   = "site_alerts:"
	alertsAllKey       = "alerts_all"
	annotationPrefix   = "annotation:"
	siteAnnotsPrefix   = "site_annotations:"
	apiKeyPrefix       = "apikey:"
	userAPIKeysPrefix  = "user_apikeys:"
	apiKeyHashPrefix   = "apikey_hash:"
	teamPrefix         = "team:"
	userTeamsPrefix    = "user_teams:"
	revokedTokenPrefix = "revoked_token:"
)

func userKey(id string) string             { return userPrefix + id }
func userEmailKey(email string) string     { return userEmailPrefix + email }
func siteKey(id string) string             { return sitePrefix + id }
func userSitesKey(userID string) string    { return userSitesPrefix + userID }
func teamSitesKey(teamID string) string    { return teamSitesPrefix + teamID }
func goalKey(id string) string             { return goalPrefix + id }
func siteGoalsKey(siteID string) string    { return siteGoalsPrefix + siteID }
func webhookKey(id string) string          { return webhookPrefix + id }
func siteWebhooksKey(siteID string) string { return siteWebhooksPrefix + siteID }
func alertKey(id string) string            { return alertPrefix + id }
func siteAlertsKey(siteID string) string   { return siteAlertsPrefix + siteID }
func annotationKey(id string) string       { return annotationPrefix + id }
func siteAnnotsKey(siteID string) string   { return siteAnnotsPrefix + siteID }
func apiKeyKey(id string) string           { return apiKeyPrefix + id }
func userAPIKeysKey(userID string) string  { return userAPIKeysPrefix + userID }
func apiKeyHashKey(hash string) string     { return apiKeyHashPrefix + hash }
func teamKey(id string) string             { return teamPrefix + id }
func userTeamsKey(userID string) string    { return userTeamsPrefix + userID }
func revokedTokenKey(jti string) string    { return revokedTokenPrefix + jti }
