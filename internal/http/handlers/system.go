package handlers

import (
	"net/http"

	intconfig "westudy/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "westudy backend no ar"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "banco de dados não conectado"})
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM listings").Scan(&count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha na consulta ao banco"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexão com o banco OK", "listings_in_db": count})
}
