package catalog

import (
	"github.com/ilomarket/shop-backend/internal/models"
)

// seedProducts is the fixed product definition set the catalog is seeded from
// at first use. CreatedAt is stamped during Initialize.
func seedProducts() []models.Product {
	return []models.Product{
		// TechHub Iloilo (store 1)
		{ID: "1", Name: "iPhone 15 Pro", Description: "Latest Apple smartphone with titanium design", Price: 65000, StoreID: "1", Category: "Smartphones", Brand: "Apple", Stock: 15},
		{ID: "2", Name: "MacBook Air M3", Description: "13-inch laptop with M3 chip", Price: 75000, StoreID: "1", Category: "Laptops", Brand: "Apple", Stock: 8},
		{ID: "3", Name: "AirPods Pro 2", Description: "Wireless earbuds with active noise cancellation", Price: 15000, StoreID: "1", Category: "Audio", Brand: "Apple", Stock: 25},
		{ID: "4", Name: "iPad Air 5th Gen", Description: "10.9-inch tablet with M1 chip", Price: 35000, StoreID: "1", Category: "Tablets", Brand: "Apple", Stock: 12},
		{ID: "5", Name: "Apple Watch Series 9", Description: "Smartwatch with health monitoring", Price: 25000, StoreID: "1", Category: "Wearables", Brand: "Apple", Stock: 20},
		{ID: "6", Name: "Magic Keyboard", Description: "Wireless keyboard for Mac", Price: 8000, StoreID: "1", Category: "Accessories", Brand: "Apple", Stock: 18},
		{ID: "7", Name: "Magic Mouse", Description: "Wireless multi-touch mouse", Price: 5500, StoreID: "1", Category: "Accessories", Brand: "Apple", Stock: 22},
		{ID: "8", Name: "Studio Display", Description: "27-inch 5K Retina display", Price: 95000, StoreID: "1", Category: "Monitors", Brand: "Apple", Stock: 5},
		{ID: "9", Name: "MagSafe Charger", Description: "Wireless charging pad for iPhone", Price: 3000, StoreID: "1", Category: "Accessories", Brand: "Apple", Stock: 30},
		{ID: "10", Name: "Apple TV 4K", Description: "Streaming device with 4K HDR", Price: 12000, StoreID: "1", Category: "Entertainment", Brand: "Apple", Stock: 15},

		// Digital World Superstore (store 2)
		{ID: "11", Name: "Samsung Galaxy S24 Ultra", Description: "Premium Android smartphone with S Pen", Price: 68000, StoreID: "2", Category: "Smartphones", Brand: "Samsung", Stock: 12},
		{ID: "12", Name: "Samsung Galaxy Book4 Pro", Description: "16-inch laptop with Intel Core i7", Price: 72000, StoreID: "2", Category: "Laptops", Brand: "Samsung", Stock: 7},
		{ID: "13", Name: "Galaxy Buds2 Pro", Description: "Wireless earbuds with 360 Audio", Price: 12000, StoreID: "2", Category: "Audio", Brand: "Samsung", Stock: 28},
		{ID: "14", Name: "Galaxy Tab S9", Description: "11-inch Android tablet", Price: 32000, StoreID: "2", Category: "Tablets", Brand: "Samsung", Stock: 10},
		{ID: "15", Name: "Galaxy Watch6", Description: "Smartwatch with health tracking", Price: 18000, StoreID: "2", Category: "Wearables", Brand: "Samsung", Stock: 16},
		{ID: "16", Name: "Odyssey G7 Monitor", Description: "32-inch curved gaming monitor", Price: 45000, StoreID: "2", Category: "Monitors", Brand: "Samsung", Stock: 6},
		{ID: "17", Name: "T7 Portable SSD", Description: "1TB external storage drive", Price: 8500, StoreID: "2", Category: "Storage", Brand: "Samsung", Stock: 25},
		{ID: "18", Name: "Wireless Charger Trio", Description: "Charge 3 devices simultaneously", Price: 4500, StoreID: "2", Category: "Accessories", Brand: "Samsung", Stock: 20},
		{ID: "19", Name: "Galaxy Camera", Description: "Smart camera with Android OS", Price: 28000, StoreID: "2", Category: "Cameras", Brand: "Samsung", Stock: 8},
		{ID: "20", Name: "Neo QLED 65\" TV", Description: "4K Smart TV with Quantum Matrix", Price: 125000, StoreID: "2", Category: "TVs", Brand: "Samsung", Stock: 3},

		// Gadget Zone Plus (store 3)
		{ID: "21", Name: "ROG Zephyrus G16", Description: "Gaming laptop with RTX 4070", Price: 95000, StoreID: "3", Category: "Laptops", Brand: "ASUS", Stock: 5},
		{ID: "22", Name: "ROG Phone 8", Description: "Gaming smartphone with 165Hz display", Price: 55000, StoreID: "3", Category: "Smartphones", Brand: "ASUS", Stock: 8},
		{ID: "23", Name: "ROG Strix XG27AQ", Description: "27-inch 1440p gaming monitor", Price: 35000, StoreID: "3", Category: "Monitors", Brand: "ASUS", Stock: 9},
		{ID: "24", Name: "ROG Keris Wireless", Description: "Gaming mouse with 42000 DPI", Price: 6500, StoreID: "3", Category: "Gaming", Brand: "ASUS", Stock: 15},
		{ID: "25", Name: "ROG Azoth Keyboard", Description: "Mechanical gaming keyboard", Price: 18000, StoreID: "3", Category: "Gaming", Brand: "ASUS", Stock: 12},
		{ID: "26", Name: "ROG Delta S Headset", Description: "Gaming headset with RGB lighting", Price: 8500, StoreID: "3", Category: "Audio", Brand: "ASUS", Stock: 18},
		{ID: "27", Name: "TUF Gaming A15", Description: "Budget gaming laptop with RTX 4050", Price: 65000, StoreID: "3", Category: "Laptops", Brand: "ASUS", Stock: 7},
		{ID: "28", Name: "ZenBook Pro 16X", Description: "Creator laptop with OLED display", Price: 125000, StoreID: "3", Category: "Laptops", Brand: "ASUS", Stock: 4},
		{ID: "29", Name: "ProArt Display PA278QV", Description: "27-inch professional monitor", Price: 28000, StoreID: "3", Category: "Monitors", Brand: "ASUS", Stock: 6},
		{ID: "30", Name: "RT-AX88U Router", Description: "WiFi 6 gaming router", Price: 22000, StoreID: "3", Category: "Networking", Brand: "ASUS", Stock: 10},

		// PC Central Iloilo (store 4)
		{ID: "31", Name: "ThinkPad X1 Carbon", Description: "Business laptop with Intel Core i7", Price: 88000, StoreID: "4", Category: "Laptops", Brand: "Lenovo", Stock: 6},
		{ID: "32", Name: "Legion 7i Gaming", Description: "High-performance gaming laptop", Price: 115000, StoreID: "4", Category: "Laptops", Brand: "Lenovo", Stock: 4},
		{ID: "33", Name: "IdeaPad Gaming 3", Description: "Entry-level gaming laptop", Price: 45000, StoreID: "4", Category: "Laptops", Brand: "Lenovo", Stock: 12},
		{ID: "34", Name: "ThinkCentre M90q", Description: "Compact business desktop", Price: 55000, StoreID: "4", Category: "Desktops", Brand: "Lenovo", Stock: 8},
		{ID: "35", Name: "Legion Tower 7i", Description: "Gaming desktop with RTX 4080", Price: 185000, StoreID: "4", Category: "Desktops", Brand: "Lenovo", Stock: 2},
		{ID: "36", Name: "ThinkVision P27h-20", Description: "27-inch USB-C monitor", Price: 32000, StoreID: "4", Category: "Monitors", Brand: "Lenovo", Stock: 10},
		{ID: "37", Name: "ThinkPad TrackPoint", Description: "Wireless keyboard with TrackPoint", Price: 7500, StoreID: "4", Category: "Accessories", Brand: "Lenovo", Stock: 15},
		{ID: "38", Name: "Legion M600s Mouse", Description: "Wireless gaming mouse", Price: 4500, StoreID: "4", Category: "Gaming", Brand: "Lenovo", Stock: 20},
		{ID: "39", Name: "Tab P11 Plus", Description: "11-inch Android tablet", Price: 18000, StoreID: "4", Category: "Tablets", Brand: "Lenovo", Stock: 14},
		{ID: "40", Name: "ThinkPad Universal USB-C Dock", Description: "Docking station for laptops", Price: 12000, StoreID: "4", Category: "Accessories", Brand: "Lenovo", Stock: 8},

		// Mobile Tech Express (store 5)
		{ID: "41", Name: "Pixel 8 Pro", Description: "Google smartphone with AI features", Price: 52000, StoreID: "5", Category: "Smartphones", Brand: "Google", Stock: 10},
		{ID: "42", Name: "Pixelbook Go", Description: "Chromebook laptop for productivity", Price: 42000, StoreID: "5", Category: "Laptops", Brand: "Google", Stock: 8},
		{ID: "43", Name: "Pixel Buds Pro", Description: "Wireless earbuds with ANC", Price: 11000, StoreID: "5", Category: "Audio", Brand: "Google", Stock: 25},
		{ID: "44", Name: "Nest Hub Max", Description: "10-inch smart display", Price: 15000, StoreID: "5", Category: "Smart Home", Brand: "Google", Stock: 12},
		{ID: "45", Name: "Nest Wifi Pro 6E", Description: "Mesh router system", Price: 18500, StoreID: "5", Category: "Networking", Brand: "Google", Stock: 15},
		{ID: "46", Name: "Chromecast with Google TV", Description: "4K HDR streaming device", Price: 3500, StoreID: "5", Category: "Entertainment", Brand: "Google", Stock: 30},
		{ID: "47", Name: "Pixel Watch 2", Description: "Smartwatch with Fitbit integration", Price: 22000, StoreID: "5", Category: "Wearables", Brand: "Google", Stock: 14},
		{ID: "48", Name: "Pixel Tablet", Description: "11-inch Android tablet with dock", Price: 28000, StoreID: "5", Category: "Tablets", Brand: "Google", Stock: 9},
		{ID: "49", Name: "Nest Doorbell", Description: "Battery-powered smart doorbell", Price: 12500, StoreID: "5", Category: "Smart Home", Brand: "Google", Stock: 18},
		{ID: "50", Name: "Pixel Stand 2", Description: "Wireless charging stand", Price: 4500, StoreID: "5", Category: "Accessories", Brand: "Google", Stock: 22},
	}
}
